package checker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/lgastako/loglint/lint"
)

var log = commonlog.GetLogger("loglint.checker")

// Checker runs the scan engine over files and directory trees. Each file
// gets its own token buffer and engine run; findings from every file flow
// into the one sink.
type Checker struct {
	cfg  lint.Config
	sink lint.Sink
}

func New(cfg lint.Config, sink lint.Sink) *Checker {
	return &Checker{cfg: cfg, sink: sink}
}

// CheckSource scans an in-memory buffer. file is only used in diagnostics.
func (c *Checker) CheckSource(file string, src []byte) {
	lint.ScanSource(file, src, c.cfg, c.sink)
}

func (c *Checker) CheckFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	log.Debugf("checking %s", path)
	c.CheckSource(path, data)
	return nil
}

// CheckTree walks root and checks every .py file, skipping dot-directories.
func (c *Checker) CheckTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warningf("walk %s: %s", path, err.Error())
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".py" {
			return nil
		}
		if err := c.CheckFile(path); err != nil {
			log.Warningf("%s", err.Error())
		}
		return nil
	})
}

// CheckPath checks a single file or a whole tree depending on what path is.
func (c *Checker) CheckPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return c.CheckTree(path)
	}
	return c.CheckFile(path)
}

// CheckPaths checks every given path, continuing past per-path failures and
// reporting them all at the end.
func (c *Checker) CheckPaths(paths []string) error {
	var failures []string
	for _, path := range paths {
		if err := c.CheckPath(path); err != nil {
			failures = append(failures, err.Error())
		}
	}
	if len(failures) > 0 {
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}
