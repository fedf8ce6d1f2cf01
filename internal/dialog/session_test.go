package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"food-agent/internal/domain"
)

func TestSessionID(t *testing.T) {
	tests := []struct {
		desc     string
		contexts []domain.OutputContext
		want     string
	}{
		{
			desc: "full dialogflow context name",
			contexts: []domain.OutputContext{{
				Name: "projects/food-agent/agent/sessions/123e4567-e89b-12d3-a456-426614174000/contexts/ongoing_order",
			}},
			want: "123e4567-e89b-12d3-a456-426614174000",
		},
		{
			desc:     "short hex token",
			contexts: []domain.OutputContext{{Name: "sessions/abc-123/contexts/x"}},
			want:     "abc-123",
		},
		{
			desc:     "only first context is considered",
			contexts: []domain.OutputContext{{Name: "no match here"}, {Name: "sessions/abc/contexts/x"}},
			want:     "",
		},
		{desc: "no contexts", contexts: nil, want: ""},
		{desc: "empty name", contexts: []domain.OutputContext{{Name: ""}}, want: ""},
		{
			desc:     "uppercase id does not match the pattern",
			contexts: []domain.OutputContext{{Name: "sessions/ABC-123/contexts/x"}},
			want:     "",
		},
		{
			desc:     "missing contexts segment",
			contexts: []domain.OutputContext{{Name: "sessions/abc-123/"}},
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, SessionID(tt.contexts))
		})
	}
}
