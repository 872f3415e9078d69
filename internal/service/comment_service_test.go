package service

import (
	"context"
	"testing"

	"boutik/internal/model"
	"boutik/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestComments(t *testing.T, persisted map[string][]model.Comment) (CommentService, *MockStore, *session.Manager, string, string) {
	t.Helper()

	sessions, adminToken, userToken := newTestSessions(t)

	mockStore := new(MockStore)
	mockStore.On("LoadComments", mock.Anything).Return(persisted, nil)
	mockStore.On("SaveComments", mock.Anything, mock.Anything).Return(nil)

	svc, err := NewCommentService(context.Background(), mockStore, sessions, zerolog.Nop())
	require.NoError(t, err)

	return svc, mockStore, sessions, adminToken, userToken
}

func TestCommentService_Add(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		text        string
		userName    string
		expectError bool
	}{
		{
			name:     "Success",
			text:     "Bèl pwodwi!",
			userName: "Jan",
		},
		{
			name:     "Text and name are trimmed",
			text:     "  Mwen renmen l  ",
			userName: "  Mari  ",
		},
		{
			name:        "Error - empty text",
			text:        "",
			userName:    "Jan",
			expectError: true,
		},
		{
			name:        "Error - whitespace-only text",
			text:        "   ",
			userName:    "Jan",
			expectError: true,
		},
		{
			name:        "Error - empty user name",
			text:        "Bèl pwodwi!",
			userName:    "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockStore, _, _, _ := newTestComments(t, nil)

			comment, err := svc.Add(ctx, "1", tt.text, tt.userName)

			if tt.expectError {
				require.Error(t, err)
				assert.Equal(t, model.ErrEmptyComment, err)
				assert.Nil(t, comment)
				mockStore.AssertNotCalled(t, "SaveComments", mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, comment)
			assert.NotEmpty(t, comment.ID)
			assert.NotEmpty(t, comment.Date)
			assert.NotContains(t, comment.Text, "  ")
			mockStore.AssertCalled(t, "SaveComments", mock.Anything, mock.Anything)
		})
	}
}

func TestCommentService_Add_NewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestComments(t, nil)

	first, err := svc.Add(ctx, "1", "Premye", "Jan")
	require.NoError(t, err)
	second, err := svc.Add(ctx, "1", "Dezyèm", "Mari")
	require.NoError(t, err)

	thread := svc.List("1")
	require.Len(t, thread, 2)
	assert.Equal(t, second.ID, thread[0].ID)
	assert.Equal(t, first.ID, thread[1].ID)
}

func TestCommentService_List_ThreadsAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _, _ := newTestComments(t, nil)

	_, err := svc.Add(ctx, "1", "Pou pwodwi en", "Jan")
	require.NoError(t, err)

	assert.Len(t, svc.List("1"), 1)
	assert.Empty(t, svc.List("2"))
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()

	persisted := func() map[string][]model.Comment {
		return map[string][]model.Comment{
			"1": {
				{ID: "100", UserName: "Jan", Text: "Bèl", Date: "12/1/2025"},
				{ID: "99", UserName: "Mari", Text: "Wi", Date: "11/1/2025"},
			},
		}
	}

	t.Run("Admin delete removes the comment", func(t *testing.T) {
		svc, mockStore, _, adminToken, _ := newTestComments(t, persisted())

		err := svc.Delete(ctx, adminToken, "1", "100")
		require.NoError(t, err)

		thread := svc.List("1")
		require.Len(t, thread, 1)
		assert.Equal(t, "99", thread[0].ID)
		mockStore.AssertCalled(t, "SaveComments", mock.Anything, mock.Anything)
	})

	t.Run("Non-admin delete is a quiet no-op", func(t *testing.T) {
		svc, mockStore, _, _, userToken := newTestComments(t, persisted())

		err := svc.Delete(ctx, userToken, "1", "100")
		require.NoError(t, err)

		assert.Len(t, svc.List("1"), 2)
		mockStore.AssertNotCalled(t, "SaveComments", mock.Anything, mock.Anything)
	})

	t.Run("Unknown comment is a no-op", func(t *testing.T) {
		svc, mockStore, _, adminToken, _ := newTestComments(t, persisted())

		err := svc.Delete(ctx, adminToken, "1", "404")
		require.NoError(t, err)

		assert.Len(t, svc.List("1"), 2)
		mockStore.AssertNotCalled(t, "SaveComments", mock.Anything, mock.Anything)
	})
}
