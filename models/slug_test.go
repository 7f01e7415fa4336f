package models

import "testing"

func TestParseSlug(t *testing.T) {
	tests := []struct {
		in      string
		want    Slug
		wantErr bool
	}{
		{in: "acme", want: Slug{Owner: "acme"}},
		{in: "acme/widgets", want: Slug{Owner: "acme", Name: "widgets"}},
		{in: "", wantErr: true},
		{in: "acme/", wantErr: true},
		{in: "/widgets", wantErr: true},
		{in: "a/b/c", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSlug(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseSlug(%q) = %+v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSlug(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSlug(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugRoundTrip(t *testing.T) {
	for _, s := range []string{"acme", "acme/widgets"} {
		slug, err := ParseSlug(s)
		if err != nil {
			t.Fatal(err)
		}
		if slug.String() != s {
			t.Errorf("String() = %q, want %q", slug.String(), s)
		}
	}
	if (Slug{Owner: "acme"}).IsRepo() {
		t.Error("account slug reported as repo")
	}
	if !(Slug{Owner: "acme", Name: "w"}).IsRepo() {
		t.Error("repo slug not reported as repo")
	}
}
