package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"boutik/internal/model"
	"boutik/internal/session"
	"boutik/internal/store"

	"github.com/rs/zerolog"
)

// commentService implements CommentService: a mapping from product identity
// to a newest-first comment list. The mapping is keyed by identity value, so
// comments survive the deletion of their product.
type commentService struct {
	store    store.Store
	sessions *session.Manager
	logger   zerolog.Logger

	mu       sync.Mutex
	comments map[string][]model.Comment
}

// NewCommentService creates a comment service, loading the persisted
// mapping (an absent or malformed blob yields an empty mapping).
func NewCommentService(
	ctx context.Context,
	st store.Store,
	sessions *session.Manager,
	logger zerolog.Logger,
) (CommentService, error) {
	logger = logger.With().Str("service", "comment").Logger()

	comments, err := st.LoadComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}
	if comments == nil {
		comments = make(map[string][]model.Comment)
	}

	logger.Info().Int("products", len(comments)).Msg("comment threads loaded")

	return &commentService{
		store:    st,
		sessions: sessions,
		logger:   logger,
		comments: comments,
	}, nil
}

// List returns a product's comments, newest first.
func (s *commentService) List(productID string) []model.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := s.comments[productID]
	out := make([]model.Comment, len(thread))
	copy(out, thread)
	return out
}

// Add validates and prepends a comment to the product's thread.
func (s *commentService) Add(ctx context.Context, productID, text, userName string) (*model.Comment, error) {
	text = strings.TrimSpace(text)
	userName = strings.TrimSpace(userName)
	if text == "" || userName == "" {
		return nil, model.ErrEmptyComment
	}

	comment := model.Comment{
		ID:       model.NewID(),
		UserName: userName,
		Text:     text,
		Date:     model.FormatShortDate(time.Now()),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.comments[productID] = append([]model.Comment{comment}, s.comments[productID]...)

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("comment_id", comment.ID).
		Str("product_id", productID).
		Msg("comment added")

	return &comment, nil
}

// Delete removes a comment from the product's thread. A no-op when the
// session is not admin or the comment does not exist.
func (s *commentService) Delete(ctx context.Context, token, productID, commentID string) error {
	if !s.sessions.IsAdmin(token) {
		s.logger.Debug().Str("comment_id", commentID).Msg("delete ignored: session is not admin")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	thread := s.comments[productID]
	for i, c := range thread {
		if c.ID == commentID {
			s.comments[productID] = append(thread[:i], thread[i+1:]...)

			if err := s.persistLocked(ctx); err != nil {
				return err
			}

			s.logger.Info().
				Str("comment_id", commentID).
				Str("product_id", productID).
				Msg("comment deleted")
			return nil
		}
	}

	s.logger.Debug().Str("comment_id", commentID).Msg("delete ignored: unknown comment")
	return nil
}

// persistLocked writes the full comment mapping to the store. Callers must
// hold the lock.
func (s *commentService) persistLocked(ctx context.Context) error {
	if err := s.store.SaveComments(ctx, s.comments); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist comments")
		return fmt.Errorf("failed to persist comments: %w", err)
	}
	return nil
}
