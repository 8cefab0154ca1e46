package dto

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notekeeper/notekeeper/internal/model"
)

func TestToNoteResponse(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("EEST", 3*60*60)
	note := &model.Note{
		ID:        "01HZY3M7Q2V8K9T4N6B1C5D0EF",
		Content:   "HTML is easy",
		Important: true,
		Date:      time.Date(2019, 5, 30, 20, 30, 31, 98_000_000, loc),
	}

	got := ToNoteResponse(note)

	assert.Equal(t, &NoteResponse{
		ID:        "01HZY3M7Q2V8K9T4N6B1C5D0EF",
		Content:   "HTML is easy",
		Important: true,
		Date:      "2019-05-30T17:30:31.098Z",
	}, got)
}

func TestFormatDate_KeepsTrailingZeros(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2020-01-02T03:04:05.100Z", FormatDate(time.Date(2020, 1, 2, 3, 4, 5, 100_000_000, time.UTC)))
	assert.Equal(t, "2020-01-02T03:04:05.000Z", FormatDate(time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestToNoteListResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(ToNoteListResponse(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestToUserResponse_DropsPasswordHash(t *testing.T) {
	t.Parallel()

	user := &model.User{
		ID:           "01HZY3M7Q2V8K9T4N6B1C5D0EF",
		Username:     "mluukkai",
		Name:         "Matti Luukkainen",
		PasswordHash: "$argon2id$v=19$m=65536,t=3,p=4$c2FsdA$aGFzaA",
	}

	b, err := json.Marshal(ToUserResponse(user))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"01HZY3M7Q2V8K9T4N6B1C5D0EF","username":"mluukkai","name":"Matti Luukkainen","notes":[]}`, string(b))
	assert.NotContains(t, string(b), "argon2")
}

func TestToUserResponse_CopiesNoteIDs(t *testing.T) {
	t.Parallel()

	user := &model.User{ID: "u1", NoteIDs: []string{"n1", "n2"}}
	resp := ToUserResponse(user)
	resp.Notes[0] = "changed"

	assert.Equal(t, "n1", user.NoteIDs[0])
}

func TestUpdateNoteRequest_AbsentFieldsStayNil(t *testing.T) {
	t.Parallel()

	var req UpdateNoteRequest
	require.NoError(t, json.Unmarshal([]byte(`{"important":false}`), &req))

	update := req.ToNoteUpdate()
	assert.Nil(t, update.Content)
	require.NotNil(t, update.Important)
	assert.False(t, *update.Important)
}
