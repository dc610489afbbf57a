package memoclient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tagnote-app/tagnote-be/pkg/markdown"

	"github.com/google/uuid"
)

type SessionState string

const (
	StateLoading  SessionState = "loading"
	StateViewing  SessionState = "viewing"
	StateEditing  SessionState = "editing"
	StateSaving   SessionState = "saving"
	StateDeleting SessionState = "deleting"
	StateError    SessionState = "error"
)

const (
	DefaultUntitledTitle = "無題のメモ"

	msgAuthRequired = "ログインが必要です。先にログインしてください。"
	msgFetchFailed  = "メモの取得に失敗しました。アクセス権限をご確認ください。"
	msgUpdateFailed = "メモの更新に失敗しました。ネットワークと権限を確認してください。"
	msgDeleteFailed = "メモの削除に失敗しました。ネットワークと権限を確認してください。"
	msgUpdated      = "メモを更新しました。"
	msgDeleted      = "メモを削除しました。"
)

var (
	ErrAuthRequired  = errors.New("auth required")
	ErrNotEditing    = errors.New("not in editing state")
	ErrDeleteAborted = errors.New("delete not confirmed")
)

// EditingSession coordinates view/edit mode, draft buffering, save, and
// delete-with-fallback for one memo.
type EditingSession struct {
	gate     *SessionGate
	store    Store
	proxy    *ProxyClient
	notifier Notifier
	renderer *markdown.Renderer

	memoId uuid.UUID
	memo   *Memo

	state        SessionState
	draftTitle   string
	draftContent string
	lastError    string
}

func NewEditingSession(
	gate *SessionGate,
	store Store,
	proxy *ProxyClient,
	notifier Notifier,
	memoId uuid.UUID,
) *EditingSession {
	return &EditingSession{
		gate:     gate,
		store:    store,
		proxy:    proxy,
		notifier: notifier,
		renderer: markdown.NewRenderer(),
		memoId:   memoId,
		state:    StateLoading,
	}
}

func (s *EditingSession) State() SessionState { return s.state }
func (s *EditingSession) Memo() *Memo         { return s.memo }
func (s *EditingSession) DraftTitle() string  { return s.draftTitle }
func (s *EditingSession) DraftContent() string {
	return s.draftContent
}
func (s *EditingSession) LastError() string { return s.lastError }

func (s *EditingSession) SetDraftTitle(title string) {
	s.draftTitle = title
}

func (s *EditingSession) SetDraftContent(content string) {
	s.draftContent = content
}

// Load fetches the memo scoped to the current identity. Missing session,
// missing row, and store errors all land in the error state with a
// user-facing message.
func (s *EditingSession) Load(ctx context.Context) error {
	s.state = StateLoading
	s.lastError = ""

	session := s.gate.Current()
	if session == nil {
		return s.fail(msgAuthRequired, ErrAuthRequired)
	}

	memo, err := s.store.FindOne(ctx, s.memoId, session.UserId)
	if err != nil || memo == nil {
		if err == nil {
			err = ErrMemoNotFound
		}
		// Missing and not-yours get the same message on purpose.
		return s.fail(msgFetchFailed, err)
	}

	s.memo = memo
	s.syncDrafts()
	s.state = StateViewing
	return nil
}

// Edit seeds the draft buffers from the committed values and enters edit mode.
func (s *EditingSession) Edit() {
	if s.state != StateViewing {
		return
	}
	s.syncDrafts()
	s.state = StateEditing
}

// Cancel discards the draft buffers and reverts to the committed values.
// No store interaction happens here.
func (s *EditingSession) Cancel() {
	if s.state != StateEditing && s.state != StateError {
		return
	}
	s.syncDrafts()
	s.lastError = ""
	s.state = StateViewing
}

// Save commits the draft buffers. A blank trimmed title is stored as the
// untitled fallback. On failure the buffers stay intact so nothing typed
// is lost.
func (s *EditingSession) Save(ctx context.Context) error {
	if s.state != StateEditing && s.state != StateError {
		return ErrNotEditing
	}

	session := s.gate.Current()
	if session == nil {
		return s.fail(msgAuthRequired, ErrAuthRequired)
	}

	s.state = StateSaving

	title := strings.TrimSpace(s.draftTitle)
	if title == "" {
		title = DefaultUntitledTitle
	}
	content := strings.TrimSpace(s.draftContent)

	memo, err := s.store.Update(ctx, s.memoId, session.UserId, title, content)
	if err != nil || memo == nil {
		if err == nil {
			err = ErrMemoNotFound
		}
		return s.fail(msgUpdateFailed, err)
	}

	s.memo = memo
	s.syncDrafts()
	s.state = StateViewing
	s.lastError = ""
	s.notifier.Notify(msgUpdated, LevelSuccess)
	return nil
}

// Delete asks for confirmation, then tries the privileged proxy first and
// falls back to a direct owner-scoped delete. The fallback keeps the
// user_id predicate; that equality check is the only thing standing between
// the fallback and another owner's row. Failure is reported only after both
// paths have been tried.
func (s *EditingSession) Delete(ctx context.Context, confirm func() bool) error {
	session := s.gate.Current()
	if session == nil {
		return s.fail(msgAuthRequired, ErrAuthRequired)
	}

	if confirm != nil && !confirm() {
		return ErrDeleteAborted
	}

	s.state = StateDeleting

	var proxyErr error
	if s.proxy != nil && session.AccessToken != "" {
		proxyErr = s.proxy.DeleteMemo(ctx, s.memoId, session.AccessToken)
		if proxyErr == nil {
			s.notifier.Notify(msgDeleted, LevelSuccess)
			return nil
		}
	} else {
		proxyErr = errors.New("proxy path unavailable")
	}

	if err := s.store.Delete(ctx, s.memoId, session.UserId); err != nil {
		message := fmt.Sprintf("%s (%s)", msgDeleteFailed, err.Error())
		s.state = StateError
		s.lastError = message
		s.notifier.Notify(message, LevelError)
		return err
	}

	s.notifier.Notify(msgDeleted, LevelSuccess)
	return nil
}

// Rendered returns the committed content as HTML for the read-only view.
func (s *EditingSession) Rendered() (string, error) {
	if s.memo == nil {
		return "", nil
	}
	return s.renderer.Render(s.memo.Content)
}

// Preview renders the draft buffer while editing.
func (s *EditingSession) Preview() (string, error) {
	return s.renderer.Render(s.draftContent)
}

func (s *EditingSession) syncDrafts() {
	if s.memo == nil {
		return
	}
	s.draftTitle = s.memo.Title
	s.draftContent = s.memo.Content
}

func (s *EditingSession) fail(message string, err error) error {
	s.state = StateError
	s.lastError = message
	s.notifier.Notify(message, LevelError)
	return err
}
