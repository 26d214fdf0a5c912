package email

import (
	"testing"
	"time"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer(t *testing.T) {
	renderer, err := NewTemplateRenderer()
	require.NoError(t, err)

	data := &domain.ScheduleChangeEmailData{
		Email:        "ada@example.com",
		SpeakerName:  "Ada <Lovelace>",
		SessionTitle: "Keynote",
		Venue:        "Hall A",
		OldStart:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		OldEnd:       time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC),
		NewStart:     time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC),
		NewEnd:       time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name        string
		template    string
		wantSubject string
		wantText    []string
	}{
		{
			name:        "rescheduled",
			template:    "session_rescheduled",
			wantSubject: `Your session "Keynote" has been rescheduled`,
			wantText:    []string{"Sat 1 Mar 10:00 - 11:00", "Sat 1 Mar 14:00 - 15:00", "Hall A"},
		},
		{
			name:        "cancelled",
			template:    "session_cancelled",
			wantSubject: `Your session "Keynote" has been cancelled`,
			wantText:    []string{"Sat 1 Mar 10:00", "cancelled"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, html, text, err := renderer.Render(tt.template, data)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubject, subject)
			for _, want := range tt.wantText {
				assert.Contains(t, text, want)
			}
			assert.Contains(t, html, "Ada &lt;Lovelace&gt;")
			assert.Contains(t, text, "Ada <Lovelace>")
		})
	}

	_, _, _, err = renderer.Render("welcome", data)
	assert.Error(t, err)
}
