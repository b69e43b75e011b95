package validate

import "testing"

func intptr(n int32) *int32 { return &n }

func TestStudyEventCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                          string
		subject, source, resourceName *string
		link                          *string
		want                          bool
	}{
		{"valid minimal", strptr("Go basics"), strptr("YOUTUBE"), strptr("Intro to Go"), nil, true},
		{"valid with link", strptr("Go basics"), strptr("ONLINE_COURSE"), strptr("Intro"), strptr("https://example.com/go"), true},
		{"missing subject", nil, strptr("YOUTUBE"), strptr("Intro"), nil, false},
		{"missing source", strptr("Go"), nil, strptr("Intro"), nil, false},
		{"unknown source", strptr("Go"), strptr("PODCAST"), strptr("Intro"), nil, false},
		{"missing resourceName", strptr("Go"), strptr("BOOK"), nil, nil, false},
		{"malformed link", strptr("Go"), strptr("PDF/EBOOK"), strptr("Intro"), strptr("not a url"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StudyEventCreate(tt.subject, tt.source, tt.resourceName, tt.link); got != tt.want {
				t.Fatalf("StudyEventCreate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStudyEventUpdate(t *testing.T) {
	t.Parallel()

	if StudyEventUpdate(nil, nil, nil) {
		t.Fatalf("expected missing id to fail")
	}
	if StudyEventUpdate(intptr(0), nil, nil) {
		t.Fatalf("expected zero id to fail")
	}
	if StudyEventUpdate(intptr(-3), nil, nil) {
		t.Fatalf("expected negative id to fail")
	}
	if !StudyEventUpdate(intptr(1), nil, nil) {
		t.Fatalf("expected id-only update input to pass")
	}
	if StudyEventUpdate(intptr(1), strptr("PODCAST"), nil) {
		t.Fatalf("expected unknown source to fail when present")
	}
	if StudyEventUpdate(intptr(1), nil, strptr("::broken")) {
		t.Fatalf("expected malformed link to fail when present")
	}
	if !StudyEventUpdate(intptr(1), strptr("BOOK"), strptr("https://example.com")) {
		t.Fatalf("expected valid source and link to pass")
	}
}

func TestStudyEventID(t *testing.T) {
	t.Parallel()

	if StudyEventID(nil) {
		t.Fatalf("expected missing id to fail")
	}
	if StudyEventID(intptr(0)) {
		t.Fatalf("expected zero id to fail")
	}
	if !StudyEventID(intptr(12)) {
		t.Fatalf("expected positive id to pass")
	}
}
