package model

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Unwrap(t *testing.T) {
	err := IOError("move", "/archive/a.txt", fs.ErrNotExist)

	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, ErrPrecondition)

	var shepherdErr *Error
	require.ErrorAs(t, err, &shepherdErr)
	assert.Equal(t, "move", shepherdErr.Op)
	assert.Equal(t, Path("/archive/a.txt"), shepherdErr.Path)
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "kind only",
			err:  &Error{Kind: ErrInvariant},
			want: "internal invariant violated",
		},
		{
			name: "with op and path",
			err:  PreconditionError("validate paths", "/stage", ErrDirectoryNotEmpty),
			want: "validate paths: precondition failed (/stage): directory is not empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrPrecondition, KindOf(PreconditionError("op", "", ErrEmptyArchive)))
	assert.Equal(t, ErrInvariant, KindOf(InvariantError("op", "", ErrEmptyCluster)))
	assert.Equal(t, ErrIO, KindOf(IOError("op", "", nil)))
	assert.Nil(t, KindOf(errors.New("plain")))
	assert.Nil(t, KindOf(nil))
}

func TestParseHashAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    HashAlgorithm
		wantErr bool
	}{
		{input: "md5", want: HashMD5},
		{input: "MD5", want: HashMD5},
		{input: " sha1 ", want: HashSHA1},
		{input: "SHA-1", want: HashSHA1},
		{input: "sha256", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHashAlgorithm(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownHashAlgorithm)
				assert.ErrorIs(t, err, ErrPrecondition)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
