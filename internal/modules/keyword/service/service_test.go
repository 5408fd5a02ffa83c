package service

import (
	"context"
	"reflect"
	"sort"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"comma separated", "python, telegram, logo", []string{"python", "telegram", "logo"}},
		{"mixed separators", "python; telegram | logo\nsales", []string{"python", "telegram", "logo", "sales"}},
		{"lowercased and trimmed", "  PYTHON ,  Sales  ", []string{"python", "sales"}},
		{"duplicates dropped", "bot, BOT, bot ", []string{"bot"}},
		{"multi word keyword", "logo design, web scraping", []string{"logo design", "web scraping"}},
		{"empty input", "   ", []string{}},
		{"only separators", ",,;;||", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

type fakeKeywordRepo struct {
	data map[int64][]string
}

func newFakeKeywordRepo() *fakeKeywordRepo {
	return &fakeKeywordRepo{data: map[int64][]string{}}
}

func (f *fakeKeywordRepo) Add(_ context.Context, telegramID int64, keywords []string) error {
	existing := map[string]struct{}{}
	for _, kw := range f.data[telegramID] {
		existing[kw] = struct{}{}
	}
	for _, kw := range keywords {
		if _, dup := existing[kw]; !dup {
			f.data[telegramID] = append(f.data[telegramID], kw)
			existing[kw] = struct{}{}
		}
	}
	return nil
}

func (f *fakeKeywordRepo) Delete(_ context.Context, telegramID int64, keywords []string) error {
	drop := map[string]struct{}{}
	for _, kw := range keywords {
		drop[kw] = struct{}{}
	}
	kept := f.data[telegramID][:0]
	for _, kw := range f.data[telegramID] {
		if _, found := drop[kw]; !found {
			kept = append(kept, kw)
		}
	}
	f.data[telegramID] = kept
	return nil
}

func (f *fakeKeywordRepo) Clear(_ context.Context, telegramID int64) error {
	delete(f.data, telegramID)
	return nil
}

func (f *fakeKeywordRepo) Get(_ context.Context, telegramID int64) ([]string, error) {
	out := append([]string(nil), f.data[telegramID]...)
	sort.Strings(out)
	return out, nil
}

func (f *fakeKeywordRepo) GetAll(_ context.Context) (map[int64][]string, error) {
	out := map[int64][]string{}
	for id, kws := range f.data {
		if len(kws) > 0 {
			out[id] = append([]string(nil), kws...)
		}
	}
	return out, nil
}

func TestAddNormalizesAndStores(t *testing.T) {
	repo := newFakeKeywordRepo()
	svc := New(repo)
	ctx := context.Background()

	added, err := svc.Add(ctx, 42, "Python; BOT, python")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !reflect.DeepEqual(added, []string{"python", "bot"}) {
		t.Errorf("Add returned %v, want [python bot]", added)
	}

	got, _ := svc.List(ctx, 42)
	if !reflect.DeepEqual(got, []string{"bot", "python"}) {
		t.Errorf("List = %v, want [bot python]", got)
	}
}

func TestAddEmptyInputIsNoop(t *testing.T) {
	repo := newFakeKeywordRepo()
	svc := New(repo)

	added, err := svc.Add(context.Background(), 42, " , ; ")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if len(added) != 0 {
		t.Errorf("Add of blanks returned %v, want empty", added)
	}
}

func TestDeleteAndClear(t *testing.T) {
	repo := newFakeKeywordRepo()
	svc := New(repo)
	ctx := context.Background()

	if _, err := svc.Add(ctx, 42, "python, bot, sales"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := svc.Delete(ctx, 42, "BOT"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, _ := svc.List(ctx, 42)
	if !reflect.DeepEqual(got, []string{"python", "sales"}) {
		t.Errorf("after delete List = %v, want [python sales]", got)
	}

	if err := svc.Clear(ctx, 42); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, _ = svc.List(ctx, 42)
	if len(got) != 0 {
		t.Errorf("after clear List = %v, want empty", got)
	}
}
