package common

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ConversionError
		want string
	}{
		{
			name: "plain",
			err:  NewConversionError(KindEncode, ErrFailedToEncode, nil),
			want: "[SCH_001] failed to encode statue",
		},
		{
			name: "wrapped",
			err:  NewConversionError(KindSkinLoad, ErrFailedToLoadSkin, errors.New("no such file")),
			want: "[SKIN_001] failed to load skin: no such file",
		},
		{
			name: "violations",
			err:  NewConfigError([]string{"scale must be greater than 0", "posterize must be between 0 and 128"}),
			want: "[CFG_001] invalid configuration: scale must be greater than 0; posterize must be between 0 and 128",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestConversionError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("convert: %w", NewConversionError(KindEncode, ErrFailedToWriteOutput, cause))

	assert.True(t, errors.Is(err, &ConversionError{Kind: KindEncode}))
	assert.False(t, errors.Is(err, &ConversionError{Kind: KindConfig}))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindEncode, KindOf(err))
	assert.Equal(t, ErrorKind(""), KindOf(cause))
}

func TestNewConfigError_CopiesViolations(t *testing.T) {
	violations := []string{"a violation"}
	err := NewConfigError(violations)
	violations[0] = "changed"

	assert.Equal(t, []string{"a violation"}, err.Violations)
	assert.True(t, strings.HasPrefix(err.Error(), "[CFG_001]"))
}

func TestSafeIntToInt16(t *testing.T) {
	tests := []struct {
		in      int
		want    int16
		wantErr bool
	}{
		{0, 0, false},
		{32767, 32767, false},
		{-32768, -32768, false},
		{32768, 0, true},
		{-32769, 0, true},
	}
	for _, tt := range tests {
		got, err := SafeIntToInt16(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("SafeIntToInt16(%d) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("SafeIntToInt16(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampToUint8(t *testing.T) {
	assert.Equal(t, uint8(0), ClampToUint8(-5))
	assert.Equal(t, uint8(128), ClampToUint8(128))
	assert.Equal(t, uint8(255), ClampToUint8(300))
}
