package memoclient

import (
	"context"
	"errors"
	"strings"

	"github.com/tagnote-app/tagnote-be/pkg/tags"
)

// PlaceholderMarkdown is the seed content of a fresh create form.
const PlaceholderMarkdown = "# はじめてのメモ\n" +
	"- [ ] UIのトーンを揃える\n" +
	"- [x] カテゴリ構造のドラフト\n" +
	"- [ ] タグの命名規則を決める\n" +
	"\n" +
	"```\n" +
	"const saveMemo = async () => {\n" +
	"  await sync();\n" +
	"};\n" +
	"```"

const (
	msgLoginRequired   = "ログインしてください。"
	msgTitleBodyNeeded = "タイトルと本文は必須です。"
	msgCreateFailed    = "メモの作成に失敗しました。もう一度お試しください。"
	msgSaved           = "メモを保存しました。"
)

var ErrValidationFailed = errors.New("validation failed")

// CreateForm holds the new-memo form state. Submission is gated on a
// resolved identity and non-blank title and content; on failure every
// entered value is retained.
type CreateForm struct {
	gate     *SessionGate
	store    Store
	notifier Notifier

	Title     string
	Category  string
	TagsInput string
	Content   string

	submitting bool
}

func NewCreateForm(gate *SessionGate, store Store, notifier Notifier) *CreateForm {
	return &CreateForm{
		gate:     gate,
		store:    store,
		notifier: notifier,
		Content:  PlaceholderMarkdown,
	}
}

// CanSubmit reports whether the submit control should be enabled.
func (f *CreateForm) CanSubmit() bool {
	return f.gate.Current() != nil && !f.submitting
}

// PreviewTags returns the normalized tag list for the current input. The
// same normalization produces the stored payload, so preview and storage
// never disagree.
func (f *CreateForm) PreviewTags() []string {
	return tags.Normalize(f.TagsInput)
}

func (f *CreateForm) Submit(ctx context.Context) error {
	session := f.gate.Current()
	if session == nil {
		f.notifier.Notify(msgLoginRequired, LevelError)
		return ErrAuthRequired
	}

	title := strings.TrimSpace(f.Title)
	content := strings.TrimSpace(f.Content)
	if title == "" || content == "" {
		f.notifier.Notify(msgTitleBodyNeeded, LevelError)
		return ErrValidationFailed
	}

	f.submitting = true
	defer func() { f.submitting = false }()

	var category *string
	if trimmed := strings.TrimSpace(f.Category); trimmed != "" {
		category = &trimmed
	}

	memo := &Memo{
		Title:    title,
		Content:  content,
		Category: category,
		Tags:     tags.Normalize(f.TagsInput),
		UserId:   session.UserId,
	}

	if err := f.store.Insert(ctx, memo); err != nil {
		f.notifier.Notify(msgCreateFailed, LevelError)
		return err
	}

	f.Title = ""
	f.Category = ""
	f.TagsInput = ""
	f.Content = PlaceholderMarkdown
	f.notifier.Notify(msgSaved, LevelSuccess)
	return nil
}
