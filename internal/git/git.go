package git

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"git.home.luguber.info/inful/syclconfigure/internal/logfields"
	gogit "github.com/go-git/go-git/v5"
)

// FindRoot walks up from start until it finds a directory containing .git
// and returns the worktree root.
func FindRoot(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}
	repo, err := open(abs)
	if err != nil {
		return "", err
	}
	wt, err := repo.Worktree()
	if err != nil {
		// bare repositories have no worktree to configure from
		return "", fmt.Errorf("worktree for %s: %w", abs, err)
	}
	root := wt.Filesystem.Root()
	slog.Debug("Detected source root", logfields.Path(root))
	return root, nil
}

func open(path string) (*gogit.Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, &NotRepositoryError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("open repository at %s: %w", path, err)
	}
	return repo, nil
}
