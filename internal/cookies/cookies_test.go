package cookies

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{
			name:   "absent header",
			header: "",
			want:   map[string]string{},
		},
		{
			name:   "single pair",
			header: "a=1",
			want:   map[string]string{"a": "1"},
		},
		{
			name:   "multiple pairs with url-encoded value",
			header: "a=1; b=two%20words",
			want:   map[string]string{"a": "1", "b": "two words"},
		},
		{
			name:   "pair without equals is skipped",
			header: "garbage; a=1",
			want:   map[string]string{"a": "1"},
		},
		{
			name:   "value keeps everything after first equals",
			header: "a=b=c",
			want:   map[string]string{"a": "b=c"},
		},
		{
			name:   "whitespace around pairs is trimmed",
			header: "  a=1 ;  b=2  ",
			want:   map[string]string{"a": "1", "b": "2"},
		},
		{
			name:   "empty value",
			header: "sessionId=",
			want:   map[string]string{"sessionId": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.header)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestFormatSessionCookie(t *testing.T) {
	expires := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	got := FormatSessionCookie("deadbeef", expires)

	want := "sessionId=deadbeef; Expires=Sat, 14 Mar 2026 09:26:53 GMT; HttpOnly; Path=/"
	if got != want {
		t.Fatalf("FormatSessionCookie = %q, want %q", got, want)
	}
}

func TestFormatSessionCookie_NonUTCExpiry(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	expires := time.Date(2026, time.March, 14, 12, 0, 0, 0, loc)

	got := FormatSessionCookie("abc", expires)
	if !strings.Contains(got, "Expires=Sat, 14 Mar 2026 09:00:00 GMT") {
		t.Fatalf("expected Expires rendered in GMT, got %q", got)
	}
}

func TestFormatExpiredCookie(t *testing.T) {
	got := FormatExpiredCookie()

	if !strings.HasPrefix(got, "sessionId=;") {
		t.Fatalf("expected empty cookie value, got %q", got)
	}
	if !strings.Contains(got, "Expires=Thu, 01 Jan 1970 00:00:00 GMT") {
		t.Fatalf("expected epoch expiry, got %q", got)
	}
	if !strings.Contains(got, "HttpOnly") || !strings.Contains(got, "Path=/") {
		t.Fatalf("expected HttpOnly and Path attributes, got %q", got)
	}
}

func TestParseRoundTripsFormattedCookie(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	header := FormatSessionCookie("0123456789abcdef", expires)

	// A browser sends back only the name=value part.
	pair, _, _ := strings.Cut(header, ";")
	got := Parse(pair)
	if got[SessionCookieName] != "0123456789abcdef" {
		t.Fatalf("round trip lost session id: %v", got)
	}
}
