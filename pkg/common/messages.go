// Package common provides shared messages, logging helpers and error
// types used across the skinstatue packages.
package common

import (
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// logFile is the rotating sink installed by SetLogFile, if any.
var logFile *lumberjack.Logger

// SetLogFile tees log output into a size-rotated file in addition to stderr.
// An empty path restores plain stderr logging.
func SetLogFile(path string) {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	if path == "" {
		log.SetOutput(os.Stderr)
		return
	}
	logFile = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	log.SetOutput(io.MultiWriter(os.Stderr, logFile))
}

// CloseLogFile flushes and closes the rotating log sink.
func CloseLogFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	log.SetOutput(os.Stderr)
	return err
}

// Error messages
const (
	ErrFailedToLoadSkin          = "failed to load skin"
	ErrFailedToDecodeSkin        = "failed to decode skin image"
	ErrInvalidSkinDimensions     = "invalid skin dimensions"
	ErrUnsupportedSkinFormat     = "unsupported skin format"
	ErrInvalidConfig             = "invalid configuration"
	ErrFailedToReadConfig        = "failed to read config file"
	ErrFailedToParseConfig       = "failed to parse config file"
	ErrFailedToWriteConfig       = "failed to write config file"
	ErrUnknownColorMode          = "unknown color mode"
	ErrUnknownOutputFormat       = "unknown output format"
	ErrUnknownDirection          = "unknown direction"
	ErrUnknownPlane              = "unknown plane"
	ErrUnknownCategory           = "unknown block category"
	ErrFailedToEncode            = "failed to encode statue"
	ErrDimensionOverflow         = "statue dimensions exceed format limits"
	ErrFailedToCompress          = "failed to compress output"
	ErrFailedToCreateOutputFile  = "failed to create output file"
	ErrFailedToWriteOutput       = "failed to write output file"
	ErrFailedToExportMaterials   = "failed to export materials list"
	ErrFailedToVoxelize          = "failed to voxelize skin"
	ErrConversionCancelled       = "conversion cancelled"
	ErrFailedToParseColor        = "failed to parse color"
	ErrFailedToEncodePaletteYAML = "failed to encode palette YAML"
)

// Info messages
const (
	InfoSkinLoaded         = "Loaded skin %s (%dx%d)"
	InfoSkinFormatDetected = "Detected skin format: %s"
	InfoLegacySkinUpgraded = "Upgraded legacy 64x32 skin to 64x64"
	InfoHDSkinDownscaled   = "Downscaled %dx%d skin to 64x64"
	InfoPaletteSelected    = "Using %d candidate blocks (%d solid, %d transparent)"
	InfoVoxelizationDone   = "Voxelized %d blocks from %d regions"
	InfoStatueEncoded      = "Encoded %s: %d blocks, %d unique, %dx%dx%d"
	InfoOutputWritten      = "Wrote %d bytes to %s"
	InfoMaterialsExported  = "Exported %d materials to YAML: %s"
	InfoConfigLoaded       = "Loaded configuration from %s"
	InfoConfigWritten      = "Wrote default configuration to %s"
	InfoBatchStarted       = "Converting %d skins with %d workers"
	InfoBatchFinished      = "Converted %d of %d skins"
	InfoEmptyStatue        = "No opaque pixels matched, output is empty"
)

// Debug messages
const (
	DebugRegionStart      = "Region %s: base=(%d,%d) size=%dx%d overlay=%t"
	DebugRegionDone       = "Region %s: %d blocks"
	DebugRegionSkipped    = "Region %s skipped by configuration"
	DebugPixelMatched     = "Pixel (%d,%d,%d,%d) -> %s"
	DebugPixelNoMatch     = "Pixel (%d,%d,%d,%d) has no candidate block"
	DebugSlimArmSpan      = "Arm span scan: min=%d max=%d"
	DebugPaletteIndex     = "Palette entry %d: %s"
	DebugBitsPerBlock     = "Packing %d palette entries at %d bits per block into %d longs"
	DebugBedrockRemap     = "Remapped %s -> %s (%s=%s)"
	DebugBoundsComputed   = "Bounds min=(%d,%d,%d) max=(%d,%d,%d)"
	DebugWorkerStarted    = "Worker %d converting %s"
	DebugConfigOverride   = "Flag --%s overrides configuration"
	DebugCompressedBytes  = "Compressed %d tag bytes to %d bytes"
	DebugMatcherCacheSize = "Matcher cache holds %d colors"
)

// Warning messages
const (
	WarnNegativeCoordinates = "Statue has negative coordinates, offset the statue for %s output"
	WarnSkinNotSquare       = "Skin is %dx%d, expected a square texture"
	WarnJobFailed           = "Conversion of %s failed: %v"
	WarnLogFileClose        = "Could not close log file: %v"
	WarnOutputRenamed       = "Output name of %s already taken, writing %s"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}
