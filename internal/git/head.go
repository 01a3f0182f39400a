package git

import "fmt"

// Head describes the checked-out revision.
type Head struct {
	Commit string
	// Branch is empty when HEAD is detached.
	Branch string
}

// ShortCommit returns the first 12 characters of the commit hash.
func (h Head) ShortCommit() string {
	if len(h.Commit) > 12 {
		return h.Commit[:12]
	}
	return h.Commit
}

// ReadRepoHead returns the HEAD commit of the repository enclosing repoPath.
func ReadRepoHead(repoPath string) (Head, error) {
	repo, err := open(repoPath)
	if err != nil {
		return Head{}, err
	}
	ref, err := repo.Head()
	if err != nil {
		return Head{}, fmt.Errorf("read HEAD: %w", err)
	}
	h := Head{Commit: ref.Hash().String()}
	if ref.Name().IsBranch() {
		h.Branch = ref.Name().Short()
	}
	return h, nil
}
