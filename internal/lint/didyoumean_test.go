package lint

import "testing"

func TestDidYouMean(t *testing.T) {
	tests := []struct {
		name       string
		choice     string
		candidates []string
		want       string
		wantOK     bool
	}{
		{
			name:       "CloseMisspelling",
			choice:     "Signed-off-by",
			candidates: []string{"Signed-of-by", "Category"},
			want:       "Signed-of-by",
			wantOK:     true,
		},
		{
			name:       "CaseInsensitive",
			choice:     "Category",
			candidates: []string{"category"},
			want:       "category",
			wantOK:     true,
		},
		{
			name:       "SuffixVariation",
			choice:     "Reviewed-by",
			candidates: []string{"Reviewed-by-team"},
			want:       "Reviewed-by-team",
			wantOK:     true,
		},
		{
			name:       "NothingClose",
			choice:     "Signed-off-by",
			candidates: []string{"Category", "Issue"},
			wantOK:     false,
		},
		{
			name:       "NoCandidates",
			choice:     "Signed-off-by",
			candidates: nil,
			wantOK:     false,
		},
		{
			// Truncation counts runes, so a multi-byte candidate is cut on
			// a character boundary rather than mid-rune.
			name:       "MultiByteCandidateTruncatedSafely",
			choice:     "Résumé",
			candidates: []string{"Résumé-extended"},
			want:       "Résumé-extended",
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := didYouMean(tt.choice, tt.candidates)
			if ok != tt.wantOK {
				t.Fatalf("didYouMean(%q, %v) ok = %v, want %v", tt.choice, tt.candidates, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("didYouMean(%q, %v) = %q, want %q", tt.choice, tt.candidates, got, tt.want)
			}
		})
	}
}
