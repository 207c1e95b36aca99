package catalog

import (
	stderrors "errors"
	"testing"

	"github.com/eventbuddy/eventbuddy/pkg/errors"
)

func strPtr(s string) *string    { return &s }
func statusPtr(s Status) *Status { return &s }

func TestAddEventAssignsMonotonicIDs(t *testing.T) {
	cat := New()

	first := cat.AddEvent(Event{Title: "Launch", Date: "2024-05-01", Status: StatusPlanned})
	second := cat.AddEvent(Event{Title: "Wrap", Date: "2024-06-01", Status: StatusCompleted})

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}

	// Ids are never reused, even after intervening deletions.
	if !cat.DeleteEvent(second.ID) {
		t.Fatal("expected delete to succeed")
	}
	third := cat.AddEvent(Event{Title: "Retro", Date: "2024-07-01", Status: StatusPlanned})
	if third.ID != 3 {
		t.Errorf("expected id 3 after deletion, got %d", third.ID)
	}

	// A caller-supplied id is ignored.
	fourth := cat.AddEvent(Event{ID: 99, Title: "Party", Date: "2024-08-01", Status: StatusPlanned})
	if fourth.ID != 4 {
		t.Errorf("expected assigned id 4, got %d", fourth.ID)
	}
}

func TestAddEventAppliesConstructionDefaults(t *testing.T) {
	cat := New()

	ev := cat.AddEvent(Event{
		Title:          "Launch",
		Date:           "2024-05-01",
		Status:         StatusPlanned,
		TagIDs:         []int{2, 1, 2, 1},
		ParticipantIDs: []int{3, 3},
	})

	if ev.Icon != "📅" {
		t.Errorf("expected default icon, got %q", ev.Icon)
	}
	if got := ev.TagIDs; len(got) != 2 || got[0] != 2 || got[1] != 1 {
		t.Errorf("expected deduplicated tag ids [2 1], got %v", got)
	}
	if got := ev.ParticipantIDs; len(got) != 1 || got[0] != 3 {
		t.Errorf("expected deduplicated participant ids [3], got %v", got)
	}

	withIcon := cat.AddEvent(Event{Title: "Gala", Date: "2024-09-01", Status: StatusPlanned, Icon: "🎉"})
	if withIcon.Icon != "🎉" {
		t.Errorf("supplied icon should be kept, got %q", withIcon.Icon)
	}
}

func TestUpdateEvent(t *testing.T) {
	t.Run("FieldIndependence", func(t *testing.T) {
		cat := New()
		ev := cat.AddEvent(Event{
			Title:    "Launch",
			Date:     "2024-05-01",
			Time:     "18:00",
			Location: "Berlin",
			Status:   StatusPlanned,
			TagIDs:   []int{1, 2},
		})

		updated, ok := cat.UpdateEvent(ev.ID, EventUpdate{Title: strPtr("Product Launch")})
		if !ok {
			t.Fatal("expected update to succeed")
		}
		if updated.Title != "Product Launch" {
			t.Errorf("title not applied: %q", updated.Title)
		}
		if updated.Date != ev.Date || updated.Time != ev.Time || updated.Location != ev.Location ||
			updated.Status != ev.Status || updated.Icon != ev.Icon {
			t.Error("untouched fields must keep their pre-update values")
		}
		if len(updated.TagIDs) != 2 {
			t.Errorf("tag ids must be untouched, got %v", updated.TagIDs)
		}
	})

	t.Run("ExplicitEmptyIsApplied", func(t *testing.T) {
		cat := New()
		ev := cat.AddEvent(Event{Title: "Launch", Date: "2024-05-01", Location: "Berlin", Status: StatusPlanned})

		// Pointer to empty string means "clear", not "skip".
		updated, ok := cat.UpdateEvent(ev.ID, EventUpdate{Location: strPtr("")})
		if !ok {
			t.Fatal("expected update to succeed")
		}
		if updated.Location != "" {
			t.Errorf("explicit clear must be applied, got %q", updated.Location)
		}
		if updated.Title != "Launch" {
			t.Error("title must be untouched")
		}
	})

	t.Run("NilSliceSkipsEmptySliceClears", func(t *testing.T) {
		cat := New()
		ev := cat.AddEvent(Event{Title: "Launch", Date: "2024-05-01", Status: StatusPlanned, ParticipantIDs: []int{1, 2}})

		kept, _ := cat.UpdateEvent(ev.ID, EventUpdate{Title: strPtr("x")})
		if len(kept.ParticipantIDs) != 2 {
			t.Errorf("nil slice must leave participants untouched, got %v", kept.ParticipantIDs)
		}

		cleared, _ := cat.UpdateEvent(ev.ID, EventUpdate{ParticipantIDs: []int{}})
		if len(cleared.ParticipantIDs) != 0 {
			t.Errorf("empty slice must clear participants, got %v", cleared.ParticipantIDs)
		}
	})

	t.Run("StatusUpdate", func(t *testing.T) {
		cat := New()
		ev := cat.AddEvent(Event{Title: "Launch", Date: "2024-05-01", Status: StatusPlanned})

		updated, _ := cat.UpdateEvent(ev.ID, EventUpdate{Status: statusPtr(StatusCompleted)})
		if updated.Status != StatusCompleted {
			t.Errorf("expected completed, got %q", updated.Status)
		}
	})

	t.Run("UnknownIDIsNoOp", func(t *testing.T) {
		cat := New()
		if _, ok := cat.UpdateEvent(42, EventUpdate{Title: strPtr("x")}); ok {
			t.Error("updating an unknown id must report absence")
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	cat := New()
	ev := cat.AddEvent(Event{Title: "Launch", Date: "2024-05-01", Status: StatusPlanned})

	if cat.DeleteEvent(42) {
		t.Error("deleting an unknown id must be a no-op")
	}
	if !cat.DeleteEvent(ev.ID) {
		t.Error("expected delete to succeed")
	}
	if _, ok := cat.Event(ev.ID); ok {
		t.Error("deleted event must be absent")
	}
}

func TestDeleteTagGuard(t *testing.T) {
	cat := New()
	cat.Load(
		[]Event{{ID: 1, Title: "Party", Date: "2024-05-01", Status: StatusPlanned, TagIDs: []int{1}}},
		[]Tag{{ID: 1, Name: "Party"}},
		nil,
	)

	err := cat.DeleteTag(1)
	if err == nil {
		t.Fatal("expected tag-in-use error while an event references the tag")
	}
	if !errors.IsTagInUse(err) {
		t.Fatalf("expected ErrTagInUse, got %v", err)
	}
	var tagErr *errors.TagInUseError
	if !stderrors.As(err, &tagErr) {
		t.Fatalf("expected *TagInUseError, got %T", err)
	}
	if len(tagErr.EventIDs) != 1 || tagErr.EventIDs[0] != 1 {
		t.Errorf("expected referencing event id 1, got %v", tagErr.EventIDs)
	}

	// The failed delete must not change state.
	if len(cat.Tags()) != 1 {
		t.Fatal("failed delete must leave the tag in place")
	}

	// Once the referencing event is gone, the delete succeeds.
	if !cat.DeleteEvent(1) {
		t.Fatal("expected event delete to succeed")
	}
	if err := cat.DeleteTag(1); err != nil {
		t.Fatalf("expected tag delete to succeed, got %v", err)
	}
	if len(cat.Tags()) != 0 {
		t.Error("tag list must be empty after deletion")
	}
}

func TestDeleteTagUnknownIDIsNoOp(t *testing.T) {
	cat := New()
	var got []Notification
	cat.Subscribe(func(n Notification) { got = append(got, n) })

	if err := cat.DeleteTag(42); err != nil {
		t.Fatalf("unknown tag id must be a no-op, got %v", err)
	}
	if len(got) != 0 {
		t.Errorf("no-op delete must publish nothing, got %d notifications", len(got))
	}
}

func TestAddTagAllowsDuplicateNames(t *testing.T) {
	cat := New()

	a := cat.AddTag("VIP")
	b := cat.AddTag("VIP")

	if a.ID == b.ID {
		t.Error("duplicate names must still get distinct ids")
	}
	if a.Name != "VIP" || b.Name != "VIP" {
		t.Error("names must be stored verbatim")
	}
}

func TestLoad(t *testing.T) {
	t.Run("CountersStartPastMaxSeededID", func(t *testing.T) {
		cat := New()
		cat.Load(
			[]Event{{ID: 7, Title: "Gala", Date: "2024-05-01", Status: StatusPlanned}},
			[]Tag{{ID: 3, Name: "Party"}},
			[]Participant{{ID: 5, Name: "Ada Lovelace"}},
		)

		if ev := cat.AddEvent(Event{Title: "Next", Date: "2024-06-01", Status: StatusPlanned}); ev.ID != 8 {
			t.Errorf("expected event id 8, got %d", ev.ID)
		}
		if tag := cat.AddTag("Work"); tag.ID != 4 {
			t.Errorf("expected tag id 4, got %d", tag.ID)
		}
		if p := cat.AddParticipant("Grace Hopper", "grace@example.com", ""); p.ID != 6 {
			t.Errorf("expected participant id 6, got %d", p.ID)
		}
	})

	t.Run("ReplacesPriorState", func(t *testing.T) {
		cat := New()
		cat.AddTag("stale")
		cat.AddEvent(Event{Title: "stale", Date: "2024-01-01", Status: StatusPlanned})

		cat.Load(nil, []Tag{{ID: 1, Name: "fresh"}}, nil)

		if len(cat.Events()) != 0 {
			t.Error("load must replace prior events")
		}
		tags := cat.Tags()
		if len(tags) != 1 || tags[0].Name != "fresh" {
			t.Errorf("load must replace prior tags, got %v", tags)
		}
	})

	t.Run("EmptyCollectionsStartCountersAtOne", func(t *testing.T) {
		cat := New()
		cat.Load(nil, nil, nil)

		if ev := cat.AddEvent(Event{Title: "First", Date: "2024-05-01", Status: StatusPlanned}); ev.ID != 1 {
			t.Errorf("expected event id 1, got %d", ev.ID)
		}
	})

	t.Run("NormalizesSeededEntities", func(t *testing.T) {
		cat := New()
		cat.Load(
			[]Event{{ID: 1, Title: "Gala", Date: "2024-05-01", Status: StatusPlanned, TagIDs: []int{1, 1, 2}}},
			[]Tag{{ID: 1, Name: "Party"}, {ID: 2, Name: "Work"}},
			[]Participant{{ID: 1, Name: "Ada Lovelace"}},
		)

		ev, _ := cat.Event(1)
		if ev.Icon != "📅" {
			t.Errorf("expected default icon, got %q", ev.Icon)
		}
		if len(ev.TagIDs) != 2 {
			t.Errorf("expected deduplicated tag ids, got %v", ev.TagIDs)
		}
		p, _ := cat.Participant(1)
		if p.Avatar != "AL" {
			t.Errorf("expected derived avatar AL, got %q", p.Avatar)
		}
	})
}

func TestListOrderSurvivesDeletions(t *testing.T) {
	cat := New()
	for _, title := range []string{"a", "b", "c", "d"} {
		cat.AddEvent(Event{Title: title, Date: "2024-05-01", Status: StatusPlanned})
	}

	cat.DeleteEvent(2)

	events := cat.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, want := range []string{"a", "c", "d"} {
		if events[i].Title != want {
			t.Errorf("position %d: expected %q, got %q", i, want, events[i].Title)
		}
	}
}

func TestDefensiveCopies(t *testing.T) {
	cat := New()
	ev := cat.AddEvent(Event{Title: "Launch", Date: "2024-05-01", Status: StatusPlanned, TagIDs: []int{1}})

	// Mutating the returned entity must not leak into the store.
	ev.Title = "hacked"
	ev.TagIDs[0] = 99
	ev.AddTag(100)

	stored, _ := cat.Event(ev.ID)
	if stored.Title != "Launch" {
		t.Error("stored title must be unaffected by caller mutation")
	}
	if len(stored.TagIDs) != 1 || stored.TagIDs[0] != 1 {
		t.Errorf("stored tag ids must be unaffected, got %v", stored.TagIDs)
	}

	// Same for listings.
	list := cat.Events()
	list[0].TagIDs[0] = 77
	stored, _ = cat.Event(ev.ID)
	if stored.TagIDs[0] != 1 {
		t.Error("list entries must be defensive copies")
	}

	// And for the draft handed to AddEvent.
	draft := Event{Title: "Other", Date: "2024-06-01", Status: StatusPlanned, TagIDs: []int{5}}
	added := cat.AddEvent(draft)
	draft.TagIDs[0] = 6
	stored, _ = cat.Event(added.ID)
	if stored.TagIDs[0] != 5 {
		t.Error("the store must not share slices with the caller's draft")
	}
}
