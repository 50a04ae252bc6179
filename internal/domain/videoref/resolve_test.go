package videoref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    MediaID
		wantErr error
	}{
		{
			name:  "watch URL",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "watch URL with extra params",
			input: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "short link",
			input: "https://youtu.be/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "embed URL",
			input: "https://www.youtube.com/embed/dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "bare 11-char ID",
			input: "dQw4w9WgXcQ",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:  "bare ID with underscore and dash",
			input: "a_b-c_d-e_f",
			want:  "a_b-c_d-e_f",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  https://youtu.be/dQw4w9WgXcQ \n",
			want:  "dQw4w9WgXcQ",
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: ErrEmpty,
		},
		{
			name:    "whitespace only",
			input:   "   ",
			wantErr: ErrEmpty,
		},
		{
			name:    "unrelated URL",
			input:   "https://example.com/x",
			wantErr: ErrUnparseable,
		},
		{
			name:    "too short bare token",
			input:   "abc123",
			wantErr: ErrUnparseable,
		},
		{
			name:    "bare token with invalid character",
			input:   "dQw4w9WgXc!",
			wantErr: ErrUnparseable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmbedURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1&enablejsapi=1",
		EmbedURL("dQw4w9WgXcQ"))
}
