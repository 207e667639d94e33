package sync

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/weekboard/weekboard/pkg/log"
)

// IsRepo reports whether dir already holds a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

func git(dir string, out io.Writer, args ...string) *exec.Cmd {
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	cmd.Stdout = out
	cmd.Stderr = out
	return cmd
}

// InitRepo makes the data directory a git repository and, when remote is
// non-empty, points origin at it.
func InitRepo(dir, remote string, out io.Writer) error {
	if !IsRepo(dir) {
		if err := git(dir, out, "init").Run(); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		log.Info("initialized board repository", "dir", dir)
	}

	if remote == "" {
		fmt.Fprintln(out, "No remote specified. Use --remote <url> to set one.")
		return nil
	}

	// origin may not exist yet
	_ = git(dir, io.Discard, "remote", "remove", "origin").Run()

	if err := git(dir, out, "remote", "add", "origin", remote).Run(); err != nil {
		return fmt.Errorf("setting remote: %w", err)
	}
	log.Info("board remote configured", "remote", remote)
	fmt.Fprintf(out, "Remote set to: %s\n", remote)
	return nil
}

// SyncRepo commits local task changes, rebases onto the remote (falling back
// to a merge) and pushes.
func SyncRepo(dir string, out io.Writer) error {
	if !IsRepo(dir) {
		return fmt.Errorf("not a git repository. Run 'weekboard init' first")
	}

	// 1. Stage and commit local changes
	fmt.Fprintln(out, "Staging changes...")
	if err := git(dir, out, "add", "-A").Run(); err != nil {
		return fmt.Errorf("staging changes: %w", err)
	}
	if err := git(dir, io.Discard, "diff", "--cached", "--quiet").Run(); err != nil {
		msg := "sync " + time.Now().Format("2006-01-02 15:04:05")
		if err := git(dir, out, "commit", "-m", msg).Run(); err != nil {
			return fmt.Errorf("committing changes: %w", err)
		}
	}

	// 2. Pull with rebase, 3. fall back to merge
	fmt.Fprintln(out, "Pulling...")
	if err := git(dir, out, "pull", "--rebase").Run(); err != nil {
		log.Error("rebase failed, trying merge", err, "dir", dir)
		fmt.Fprintln(out, "Rebase failed, trying merge...")
		_ = git(dir, io.Discard, "rebase", "--abort").Run()

		if err := git(dir, out, "pull", "--no-rebase").Run(); err != nil {
			_ = git(dir, io.Discard, "merge", "--abort").Run()
			return fmt.Errorf("sync failed: could not rebase or merge. Resolve conflicts manually")
		}
	}

	// 4. Push
	fmt.Fprintln(out, "Pushing...")
	if err := git(dir, out, "push").Run(); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	log.Info("board synced", "dir", dir)
	fmt.Fprintln(out, "Sync complete.")
	return nil
}
