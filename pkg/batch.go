package pkg

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/schematic"
)

// BatchJob is one skin to convert and where to write it.
type BatchJob struct {
	Input  string
	Output string
}

// BatchResult is the outcome of one BatchJob.
type BatchResult struct {
	Job    BatchJob
	Result *ConversionResult
	Err    error
}

// BatchJobs pairs each input with an output in dir. Inputs that share a
// base name get a numeric suffix (steve.schem, steve_2.schem, ...) so no
// two jobs write the same file.
func BatchJobs(dir string, inputs []string, format schematic.Format) []BatchJob {
	jobs := make([]BatchJob, 0, len(inputs))
	used := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		out := OutputPath(dir, in, format)
		if used[out] {
			stem := strings.TrimSuffix(out, format.Extension())
			for n := 2; used[out]; n++ {
				out = fmt.Sprintf("%s_%d%s", stem, n, format.Extension())
			}
			common.LogWarn(common.WarnOutputRenamed, in, out)
		}
		used[out] = true
		jobs = append(jobs, BatchJob{Input: in, Output: out})
	}
	return jobs
}

// duplicateOutputs lists every output path claimed by more than one job.
func duplicateOutputs(jobs []BatchJob) []string {
	seen := make(map[string]int, len(jobs))
	var violations []string
	for _, job := range jobs {
		key := filepath.Clean(job.Output)
		seen[key]++
		if seen[key] == 2 {
			violations = append(violations, fmt.Sprintf("output %q is written by more than one job", job.Output))
		}
	}
	return violations
}

// ConvertBatch converts every job with up to cfg.MaxWorkers conversions in
// flight. Results come back in job order. onDone, if set, is called from
// the worker goroutines as each job finishes. A failed job does not stop
// the others; a cancelled context stops jobs that have not started. Jobs
// sharing an output path are rejected before any work starts.
func (p *StatueProcessor) ConvertBatch(ctx context.Context, jobs []BatchJob, cfg ConversionConfig, onDone func(BatchResult)) ([]BatchResult, error) {
	violations := append(ValidateConfig(cfg), duplicateOutputs(jobs)...)
	if len(violations) > 0 {
		return nil, common.NewConfigError(violations)
	}

	workers := min(cfg.MaxWorkers, len(jobs))
	common.LogInfo(common.InfoBatchStarted, len(jobs), workers)

	results := make([]BatchResult, len(jobs))
	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := range indices {
				job := jobs[i]
				common.LogDebug(common.DebugWorkerStarted, worker, job.Input)

				res := BatchResult{Job: job}
				if err := ctx.Err(); err != nil {
					res.Err = common.FormatError(common.ErrConversionCancelled, err)
				} else {
					res.Result, res.Err = p.ConvertFile(ctx, job.Input, job.Output, cfg)
				}
				if res.Err != nil {
					common.LogWarn(common.WarnJobFailed, job.Input, res.Err)
				}
				results[i] = res
				if onDone != nil {
					onDone(res)
				}
			}
		}(w)
	}

	for i := range jobs {
		indices <- i
	}
	close(indices)
	wg.Wait()

	succeeded := 0
	for _, r := range results {
		if r.Err == nil {
			succeeded++
		}
	}
	common.LogInfo(common.InfoBatchFinished, succeeded, len(jobs))
	return results, nil
}
