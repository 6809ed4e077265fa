package git

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// linearRepo builds a five-commit linear history with hourly commit times
// and returns the repository plus the hashes oldest-first.
func linearRepo(t *testing.T) (*Repository, []plumbing.Hash) {
	t.Helper()

	_, raw := createTestRepo(t)
	var hashes []plumbing.Hash
	for i := 0; i < 5; i++ {
		h := addCommit(t, raw, "commit "+string(rune('a'+i)),
			map[string]string{"file.txt": "revision " + string(rune('a'+i)) + "\n"},
			testTime(i))
		hashes = append(hashes, h)
	}
	return NewRepository(raw), hashes
}

func collectIDs(t *testing.T, repo *Repository, cutoffs Cutoffs) []string {
	t.Helper()

	commits, err := repo.Commits(cutoffs)
	if err != nil {
		t.Fatalf("Commits failed: %v", err)
	}
	ids := make([]string, len(commits))
	for i, c := range commits {
		ids[i] = c.ID
	}
	return ids
}

func assertIDs(t *testing.T, got []string, want []plumbing.Hash) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d commits, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i].String() {
			t.Errorf("commit %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestWalkNewestFirst(t *testing.T) {
	repo, hashes := linearRepo(t)

	got := collectIDs(t, repo, Cutoffs{})
	assertIDs(t, got, []plumbing.Hash{hashes[4], hashes[3], hashes[2], hashes[1], hashes[0]})
}

func TestWalkStartIDStopsInclusively(t *testing.T) {
	repo, hashes := linearRepo(t)

	got := collectIDs(t, repo, Cutoffs{StartID: &hashes[2]})
	assertIDs(t, got, []plumbing.Hash{hashes[4], hashes[3], hashes[2]})
}

func TestWalkEndIDKeepsCutoffCommit(t *testing.T) {
	repo, hashes := linearRepo(t)

	got := collectIDs(t, repo, Cutoffs{EndID: &hashes[3]})
	assertIDs(t, got, []plumbing.Hash{hashes[3], hashes[2], hashes[1], hashes[0]})
}

func TestWalkEndIDNeverFoundYieldsNothing(t *testing.T) {
	repo, _ := linearRepo(t)

	absent := plumbing.NewHash("0123456789abcdef0123456789abcdef01234567")
	got := collectIDs(t, repo, Cutoffs{EndID: &absent})
	if len(got) != 0 {
		t.Fatalf("expected empty walk, got %v", got)
	}
}

func TestWalkBothIDCutoffs(t *testing.T) {
	repo, hashes := linearRepo(t)

	got := collectIDs(t, repo, Cutoffs{StartID: &hashes[1], EndID: &hashes[3]})
	assertIDs(t, got, []plumbing.Hash{hashes[3], hashes[2], hashes[1]})
}

func TestWalkStartTimestampPrunesOlder(t *testing.T) {
	repo, hashes := linearRepo(t)

	start := testTime(2)
	got := collectIDs(t, repo, Cutoffs{Start: &start})
	assertIDs(t, got, []plumbing.Hash{hashes[4], hashes[3], hashes[2]})
}

func TestWalkEndTimestampSkipsNewer(t *testing.T) {
	repo, hashes := linearRepo(t)

	end := testTime(2)
	got := collectIDs(t, repo, Cutoffs{End: &end})
	assertIDs(t, got, []plumbing.Hash{hashes[2], hashes[1], hashes[0]})
}

func TestWalkTimestampWindow(t *testing.T) {
	repo, hashes := linearRepo(t)

	start, end := testTime(1), testTime(3)
	got := collectIDs(t, repo, Cutoffs{Start: &start, End: &end})
	assertIDs(t, got, []plumbing.Hash{hashes[3], hashes[2], hashes[1]})
}

func TestWalkEqualTimestampsKeepParentsAfterChildren(t *testing.T) {
	_, raw := createTestRepo(t)
	repo := NewRepository(raw)

	// Equal commit times on every commit: ordering falls back to traversal
	// order, which must still put children before their parents.
	when := testTime(0)
	addCommit(t, raw, "root", map[string]string{"a.txt": "a\n"}, when)
	addCommit(t, raw, "child", map[string]string{"a.txt": "b\n"}, when)
	addCommit(t, raw, "tip", map[string]string{"a.txt": "c\n"}, when)

	commits, err := repo.Commits(Cutoffs{})
	if err != nil {
		t.Fatalf("Commits failed: %v", err)
	}
	position := make(map[string]int)
	for i, c := range commits {
		position[c.ID] = i
	}
	for _, c := range commits {
		for _, parent := range c.Parents {
			if position[parent] <= position[c.ID] {
				t.Errorf("parent %s emitted before child %s", parent, c.ID)
			}
		}
	}
}

func TestWalkerNextExhaustion(t *testing.T) {
	repo, _ := linearRepo(t)

	walker, err := repo.Walk(Cutoffs{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	count := 0
	for {
		_, err := walker.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		count++
	}
	if count != 5 {
		t.Fatalf("walked %d commits, want 5", count)
	}
	if _, err := walker.Next(); err != io.EOF {
		t.Fatalf("Next after exhaustion = %v, want io.EOF", err)
	}
}

func TestWalkerForEachStop(t *testing.T) {
	repo, hashes := linearRepo(t)

	walker, err := repo.Walk(Cutoffs{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	var seen []string
	err = walker.ForEach(func(c *Commit) error {
		seen = append(seen, c.ID)
		if len(seen) == 2 {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ForEach failed: %v", err)
	}
	assertIDs(t, seen, []plumbing.Hash{hashes[4], hashes[3]})
}

func TestWalkerForEachPropagatesError(t *testing.T) {
	repo, _ := linearRepo(t)

	walker, err := repo.Walk(Cutoffs{})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	boom := errors.New("boom")
	if err := walker.ForEach(func(*Commit) error { return boom }); err != boom {
		t.Fatalf("ForEach error = %v, want %v", err, boom)
	}
}

func TestDecodedCommitFields(t *testing.T) {
	_, raw := createTestRepo(t)
	repo := NewRepository(raw)

	when := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	hash := addCommit(t, raw,
		"Add feature\n\nLonger explanation.\n\nSigned-off-by: Test Author <test@example.com>\n",
		map[string]string{"feature.txt": "feature\n"}, when)

	commit, err := repo.Head()
	if err != nil {
		t.Fatalf("Head failed: %v", err)
	}
	if commit.ID != hash.String() {
		t.Errorf("ID = %s, want %s", commit.ID, hash)
	}
	if commit.Hash() != hash {
		t.Errorf("Hash() = %s, want %s", commit.Hash(), hash)
	}
	if commit.Summary != "Add feature" {
		t.Errorf("Summary = %q", commit.Summary)
	}
	if commit.Body != "Longer explanation." {
		t.Errorf("Body = %q", commit.Body)
	}
	if got := commit.Trailers["Signed-off-by"]; len(got) != 1 || got[0] != "Test Author <test@example.com>" {
		t.Errorf("Trailers = %v", commit.Trailers)
	}
	if commit.Author.Name != "Test Author" || commit.Author.Email != "test@example.com" {
		t.Errorf("Author = %+v", commit.Author)
	}
	if !commit.When.Equal(when) {
		t.Errorf("When = %v, want %v", commit.When, when)
	}
	if got := commit.CivilTime(); got != when.In(time.Local).Format("2006-01-02T15:04:05") {
		t.Errorf("CivilTime = %q", got)
	}
	if len(commit.Parents) != 0 {
		t.Errorf("root commit has parents: %v", commit.Parents)
	}
}
