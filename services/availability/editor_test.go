package availability

import (
	"errors"
	"testing"

	"brandconnect/utils"
)

func loadedEditor(t *testing.T, repo *fakeRepo) *Editor {
	t.Helper()
	ed := NewEditor(newService(repo))
	if err := ed.Load("c1"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ed
}

func TestEditorToggleKeepsTimes(t *testing.T) {
	ed := loadedEditor(t, newFakeRepo())

	if err := ed.SetTimes(3, "10:00", "15:30"); err != nil {
		t.Fatalf("SetTimes: %v", err)
	}
	if err := ed.ToggleDay(3); err != nil {
		t.Fatalf("ToggleDay on: %v", err)
	}
	if err := ed.ToggleDay(3); err != nil {
		t.Fatalf("ToggleDay off: %v", err)
	}
	if err := ed.ToggleDay(3); err != nil {
		t.Fatalf("ToggleDay back on: %v", err)
	}

	day := ed.Profile().Day(3)
	if !day.IsAvailable {
		t.Fatal("day should be available after an odd number of toggles")
	}
	if day.StartTime != "10:00" || day.EndTime != "15:30" {
		t.Fatalf("times should survive toggling, got %s-%s", day.StartTime, day.EndTime)
	}
}

func TestEditorSetTimesRejectionIsNoOp(t *testing.T) {
	ed := loadedEditor(t, newFakeRepo())
	if err := ed.SetTimes(1, "09:00", "12:00"); err != nil {
		t.Fatalf("SetTimes: %v", err)
	}

	cases := []struct{ start, end string }{
		{"14:00", "14:00"},
		{"14:00", "13:00"},
		{"9am", "17:00"},
		{"09:00", "25:00"},
	}
	for _, tc := range cases {
		err := ed.SetTimes(1, tc.start, tc.end)
		var ve *utils.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("SetTimes(%q, %q): expected a validation error, got %v", tc.start, tc.end, err)
		}
		day := ed.Profile().Day(1)
		if day.StartTime != "09:00" || day.EndTime != "12:00" {
			t.Errorf("SetTimes(%q, %q) must keep previous times, got %s-%s",
				tc.start, tc.end, day.StartTime, day.EndTime)
		}
	}
}

func TestEditorOutOfRangeDay(t *testing.T) {
	ed := loadedEditor(t, newFakeRepo())
	for _, dow := range []int{-1, 7} {
		if err := ed.ToggleDay(dow); err == nil {
			t.Errorf("ToggleDay(%d) should fail", dow)
		}
	}
}

func TestEditorRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	ed := loadedEditor(t, repo)

	if err := ed.SetTimes(1, "09:00", "17:00"); err != nil {
		t.Fatalf("SetTimes: %v", err)
	}
	if err := ed.ToggleDay(1); err != nil {
		t.Fatalf("ToggleDay: %v", err)
	}
	if err := ed.SetBufferTime(30); err != nil {
		t.Fatalf("SetBufferTime: %v", err)
	}
	if err := ed.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fresh := loadedEditor(t, repo)
	day := fresh.Profile().Day(1)
	if day == nil || !day.IsAvailable || day.StartTime != "09:00" || day.EndTime != "17:00" {
		t.Fatalf("reloaded Monday does not match what was saved: %+v", day)
	}
	if fresh.Profile().BufferTime != 30 {
		t.Fatalf("reloaded buffer = %d, want 30", fresh.Profile().BufferTime)
	}
}

func TestEditorFailedSaveRetainsEdits(t *testing.T) {
	repo := newFakeRepo()
	ed := loadedEditor(t, repo)

	if err := ed.SetTimes(5, "08:00", "13:00"); err != nil {
		t.Fatalf("SetTimes: %v", err)
	}
	if err := ed.ToggleDay(5); err != nil {
		t.Fatalf("ToggleDay: %v", err)
	}

	repo.failNext = errors.New("write timeout")
	err := ed.Save()
	var te *utils.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected a transport error, got %v", err)
	}

	day := ed.Profile().Day(5)
	if day == nil || !day.IsAvailable || day.StartTime != "08:00" {
		t.Fatalf("edits must survive a failed save: %+v", day)
	}

	// Retry succeeds without re-entering anything.
	if err := ed.Save(); err != nil {
		t.Fatalf("retry after failed save: %v", err)
	}
	stored, _ := repo.Get("c1")
	if got := stored.Day(5); got == nil || !got.IsAvailable {
		t.Fatalf("retried save did not persist Friday: %+v", got)
	}
}

func TestEditorBufferRejection(t *testing.T) {
	ed := loadedEditor(t, newFakeRepo())
	if err := ed.SetBufferTime(15); err != nil {
		t.Fatalf("SetBufferTime(15): %v", err)
	}
	if err := ed.SetBufferTime(-1); err == nil {
		t.Fatal("SetBufferTime(-1) should fail")
	}
	if got := ed.Profile().BufferTime; got != 15 {
		t.Fatalf("rejected buffer must not change state, got %d", got)
	}
}

func TestEditorUnloadedOperationsFail(t *testing.T) {
	ed := NewEditor(newService(newFakeRepo()))
	if err := ed.ToggleDay(1); err == nil {
		t.Error("ToggleDay before Load should fail")
	}
	if err := ed.SetBufferTime(10); err == nil {
		t.Error("SetBufferTime before Load should fail")
	}
	if err := ed.Save(); err == nil {
		t.Error("Save before Load should fail")
	}
}
