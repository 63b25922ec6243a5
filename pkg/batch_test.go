package pkg

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/hansbonini/skinstatue/pkg/common"
	"github.com/hansbonini/skinstatue/pkg/schematic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	in := writeSkin(t, dir, whiteSkin())

	jobs := []BatchJob{
		{Input: in, Output: filepath.Join(dir, "a.schem")},
		{Input: filepath.Join(dir, "missing.png"), Output: filepath.Join(dir, "b.schem")},
		{Input: in, Output: filepath.Join(dir, "c.schem")},
	}

	cfg := DefaultConfig()
	cfg.MaxWorkers = 2
	var done atomic.Int32
	results, err := NewStatueProcessor().ConvertBatch(context.Background(), jobs, cfg, func(BatchResult) {
		done.Add(1)
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.EqualValues(t, 3, done.Load())

	for i, r := range results {
		assert.Equal(t, jobs[i], r.Job)
	}
	require.NoError(t, results[0].Err)
	assert.Equal(t, 384, results[0].Result.BlockCount)
	assert.Equal(t, common.KindSkinLoad, common.KindOf(results[1].Err))
	require.NoError(t, results[2].Err)
	assert.FileExists(t, filepath.Join(dir, "c.schem"))
}

func TestConvertBatchCancelled(t *testing.T) {
	dir := t.TempDir()
	in := writeSkin(t, dir, whiteSkin())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewStatueProcessor().ConvertBatch(ctx, []BatchJob{{Input: in, Output: OutputPath(dir, in, schematic.FormatSchem)}}, DefaultConfig(), nil)
	require.NoError(t, err)
	assert.ErrorIs(t, results[0].Err, context.Canceled)
	assert.NoFileExists(t, filepath.Join(dir, "steve.schem"))
}

func TestConvertBatchInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxWorkers = 0
	_, err := NewStatueProcessor().ConvertBatch(context.Background(), nil, cfg, nil)
	assert.Equal(t, common.KindConfig, common.KindOf(err))
}

func TestBatchJobsRenamesCollidingOutputs(t *testing.T) {
	dir := "out"
	inputs := []string{
		filepath.Join("a", "steve.png"),
		filepath.Join("b", "steve.png"),
		filepath.Join("c", "alex.webp"),
		filepath.Join("c", "steve_2.png"),
		filepath.Join("d", "steve.webp"),
	}

	jobs := BatchJobs(dir, inputs, schematic.FormatSchem)
	require.Len(t, jobs, len(inputs))

	want := []string{"steve.schem", "steve_2.schem", "alex.schem", "steve_2_2.schem", "steve_3.schem"}
	for i, job := range jobs {
		assert.Equal(t, inputs[i], job.Input)
		assert.Equal(t, filepath.Join(dir, want[i]), job.Output)
	}
	assert.Empty(t, duplicateOutputs(jobs))
}

func TestConvertBatchRejectsSharedOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeSkin(t, dir, whiteSkin())
	out := filepath.Join(dir, "steve.schem")

	jobs := []BatchJob{{Input: in, Output: out}, {Input: in, Output: filepath.Join(dir, ".", "steve.schem")}}
	_, err := NewStatueProcessor().ConvertBatch(context.Background(), jobs, DefaultConfig(), nil)
	require.Error(t, err)

	var ce *common.ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, common.KindConfig, ce.Kind)
	assert.Len(t, ce.Violations, 1)
	assert.NoFileExists(t, out)
}
