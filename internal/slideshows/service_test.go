package slideshows_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/slidekit/proofplay/internal/events"
	"github.com/slidekit/proofplay/internal/slideshows"
	"github.com/slidekit/proofplay/pkg/pagination"
)

type fakeStore struct {
	shows     map[int64]*slideshows.Slideshow
	nextID    int64
	appendErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{shows: map[int64]*slideshows.Slideshow{}}
}

func (f *fakeStore) seed(show *slideshows.Slideshow) {
	f.shows[show.ID] = show
	if show.ID > f.nextID {
		f.nextID = show.ID
	}
}

func (f *fakeStore) Save(_ context.Context, show *slideshows.Slideshow) (*slideshows.Slideshow, error) {
	if show.ID == 0 {
		f.nextID++
		show.ID = f.nextID
		show.CreatedAt = time.Now()
		f.shows[show.ID] = show
		return show, nil
	}

	existing, ok := f.shows[show.ID]
	if !ok {
		return nil, &slideshows.NotFoundError{ID: show.ID}
	}
	existing.Name = show.Name
	existing.ImageIDs = show.ImageIDs
	return existing, nil
}

func (f *fakeStore) FindByID(_ context.Context, id int64) (*slideshows.Slideshow, error) {
	show, ok := f.shows[id]
	if !ok {
		return nil, &slideshows.NotFoundError{ID: id}
	}
	copied := *show
	return &copied, nil
}

func (f *fakeStore) FindAll(_ context.Context, page pagination.PageRequest, _ slideshows.Filters) (*pagination.PageResult[slideshows.Slideshow], error) {
	data := make([]slideshows.Slideshow, 0, len(f.shows))
	for _, show := range f.shows {
		data = append(data, *show)
	}
	result := pagination.NewPageResult(data, len(data), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeStore) DeleteByID(_ context.Context, id int64) error {
	delete(f.shows, id)
	return nil
}

func (f *fakeStore) AppendProofOfPlay(_ context.Context, slideshowID, imageID int64, playedAt time.Time) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	show, ok := f.shows[slideshowID]
	if !ok {
		return &slideshows.NotFoundError{ID: slideshowID}
	}
	show.ProofOfPlays = append(show.ProofOfPlays, slideshows.ProofOfPlay{
		ImageID:  imageID,
		PlayedAt: playedAt,
	})
	return nil
}

type captureEmitter struct {
	channel string
	key     string
	payload []byte
	calls   int
	err     error
}

func (e *captureEmitter) Publish(_ context.Context, channel, key string, payload []byte) error {
	e.calls++
	e.channel = channel
	e.key = key
	e.payload = payload
	return e.err
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRecordProofOfPlay(t *testing.T) {
	store := newFakeStore()
	store.seed(&slideshows.Slideshow{
		ID:           1,
		Name:         "lobby loop",
		ImageIDs:     []int64{3, 4, 3},
		ProofOfPlays: []slideshows.ProofOfPlay{},
	})
	emitter := &captureEmitter{}
	sys := slideshows.New(store, emitter, "proof-of-play", discard())

	if err := sys.RecordProofOfPlay(context.Background(), 1, 3); err != nil {
		t.Fatalf("RecordProofOfPlay() failed: %v", err)
	}

	show := store.shows[1]
	if len(show.ProofOfPlays) != 1 {
		t.Fatalf("proof count = %d, want 1", len(show.ProofOfPlays))
	}
	if show.ProofOfPlays[0].ImageID != 3 {
		t.Errorf("proof image id = %d, want 3", show.ProofOfPlays[0].ImageID)
	}

	if emitter.calls != 1 {
		t.Fatalf("emitter calls = %d, want 1", emitter.calls)
	}
	if emitter.channel != "proof-of-play" {
		t.Errorf("channel = %q, want %q", emitter.channel, "proof-of-play")
	}
	if emitter.key != "1" {
		t.Errorf("key = %q, want %q", emitter.key, "1")
	}

	var event events.ProofOfPlay
	if err := json.Unmarshal(emitter.payload, &event); err != nil {
		t.Fatalf("payload decode failed: %v", err)
	}
	if event.SlideshowID != 1 {
		t.Errorf("event slideshow id = %d, want 1", event.SlideshowID)
	}
	if event.ImageID != 3 {
		t.Errorf("event image id = %d, want 3", event.ImageID)
	}
	if event.EventType != events.TypeProofOfPlay {
		t.Errorf("event type = %q, want %q", event.EventType, events.TypeProofOfPlay)
	}
	if _, err := time.Parse(time.RFC3339Nano, event.Timestamp); err != nil {
		t.Errorf("event timestamp %q is not RFC3339: %v", event.Timestamp, err)
	}
}

func TestRecordProofOfPlay_ImageNotInSlideshow(t *testing.T) {
	store := newFakeStore()
	store.seed(&slideshows.Slideshow{
		ID:           2,
		Name:         "menu board",
		ImageIDs:     []int64{1},
		ProofOfPlays: []slideshows.ProofOfPlay{},
	})
	emitter := &captureEmitter{}
	sys := slideshows.New(store, emitter, "proof-of-play", discard())

	err := sys.RecordProofOfPlay(context.Background(), 2, 3)
	if err == nil {
		t.Fatal("RecordProofOfPlay() should fail for non-member image")
	}
	if !errors.Is(err, slideshows.ErrNotInSlideshow) {
		t.Errorf("error does not wrap ErrNotInSlideshow: %v", err)
	}

	want := "Image with id 3 is not part of slideshow with id 2"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	if len(store.shows[2].ProofOfPlays) != 0 {
		t.Error("proof was recorded for a non-member image")
	}
	if emitter.calls != 0 {
		t.Errorf("emitter calls = %d, want 0", emitter.calls)
	}
}

func TestRecordProofOfPlay_SlideshowNotFound(t *testing.T) {
	store := newFakeStore()
	emitter := &captureEmitter{}
	sys := slideshows.New(store, emitter, "proof-of-play", discard())

	err := sys.RecordProofOfPlay(context.Background(), 2, 3)
	if err == nil {
		t.Fatal("RecordProofOfPlay() should fail for missing slideshow")
	}
	if !errors.Is(err, slideshows.ErrNotFound) {
		t.Errorf("error does not wrap ErrNotFound: %v", err)
	}

	want := "Slideshow not found with id: 2"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	if emitter.calls != 0 {
		t.Errorf("emitter calls = %d, want 0", emitter.calls)
	}
}

func TestRecordProofOfPlay_AppendFails(t *testing.T) {
	store := newFakeStore()
	store.seed(&slideshows.Slideshow{
		ID:       1,
		ImageIDs: []int64{3},
	})
	store.appendErr = errors.New("connection reset")
	emitter := &captureEmitter{}
	sys := slideshows.New(store, emitter, "proof-of-play", discard())

	if err := sys.RecordProofOfPlay(context.Background(), 1, 3); err == nil {
		t.Fatal("RecordProofOfPlay() should surface the persistence failure")
	}

	if emitter.calls != 0 {
		t.Error("event emitted despite persistence failure")
	}
}

func TestRecordProofOfPlay_PublishFails(t *testing.T) {
	store := newFakeStore()
	store.seed(&slideshows.Slideshow{
		ID:           1,
		ImageIDs:     []int64{3},
		ProofOfPlays: []slideshows.ProofOfPlay{},
	})
	emitter := &captureEmitter{err: errors.New("broker unavailable")}
	sys := slideshows.New(store, emitter, "proof-of-play", discard())

	if err := sys.RecordProofOfPlay(context.Background(), 1, 3); err == nil {
		t.Fatal("RecordProofOfPlay() should surface the publish failure")
	}

	// The proof survives even though the event did not go out.
	if len(store.shows[1].ProofOfPlays) != 1 {
		t.Errorf("proof count = %d, want 1", len(store.shows[1].ProofOfPlays))
	}
}

func TestCreate(t *testing.T) {
	store := newFakeStore()
	sys := slideshows.New(store, &captureEmitter{}, "proof-of-play", discard())

	show, err := sys.Create(context.Background(), slideshows.Draft{
		Name:     "campaign",
		ImageIDs: []int64{5, 5, 7},
	})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if show.ID == 0 {
		t.Error("created slideshow has no id")
	}
	if len(show.ImageIDs) != 3 {
		t.Errorf("image ids = %v, want duplicates preserved", show.ImageIDs)
	}
	if show.ProofOfPlays == nil || len(show.ProofOfPlays) != 0 {
		t.Errorf("proof of plays = %v, want empty history", show.ProofOfPlays)
	}
}

func TestCreate_NilImageIDs(t *testing.T) {
	store := newFakeStore()
	sys := slideshows.New(store, &captureEmitter{}, "proof-of-play", discard())

	show, err := sys.Create(context.Background(), slideshows.Draft{Name: "empty"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if show.ImageIDs == nil {
		t.Error("image ids should be an empty slice, not nil")
	}
}

func TestUpdate(t *testing.T) {
	store := newFakeStore()
	store.seed(&slideshows.Slideshow{
		ID:       4,
		Name:     "old name",
		ImageIDs: []int64{1, 2},
		ProofOfPlays: []slideshows.ProofOfPlay{
			{ImageID: 1, PlayedAt: time.Now()},
		},
	})
	sys := slideshows.New(store, &captureEmitter{}, "proof-of-play", discard())

	show, err := sys.Update(context.Background(), 4, slideshows.Draft{
		Name:     "new name",
		ImageIDs: []int64{9},
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	if show.ID != 4 {
		t.Errorf("id = %d, want 4", show.ID)
	}
	if show.Name != "new name" {
		t.Errorf("name = %q, want %q", show.Name, "new name")
	}
	if len(show.ImageIDs) != 1 || show.ImageIDs[0] != 9 {
		t.Errorf("image ids = %v, want [9]", show.ImageIDs)
	}
	if len(store.shows[4].ProofOfPlays) != 1 {
		t.Error("update discarded proof of play history")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	store := newFakeStore()
	sys := slideshows.New(store, &captureEmitter{}, "proof-of-play", discard())

	_, err := sys.Update(context.Background(), 8, slideshows.Draft{Name: "x"})
	if !errors.Is(err, slideshows.ErrNotFound) {
		t.Errorf("error does not wrap ErrNotFound: %v", err)
	}
}

func TestDelete_Absent(t *testing.T) {
	store := newFakeStore()
	sys := slideshows.New(store, &captureEmitter{}, "proof-of-play", discard())

	if err := sys.Delete(context.Background(), 42); err != nil {
		t.Errorf("Delete() of absent id failed: %v", err)
	}
}
