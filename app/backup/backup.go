// Package backup makes periodic copies of the job snapshot into a directory
package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync/atomic"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"
)

// backup files are named <unixnano>-<seq>.backup.json, nothing else in Location is touched
var backupName = regexp.MustCompile(`^\d+-\d+\.backup\.json$`)

// SnapshotFunc returns the document to back up
type SnapshotFunc func() ([]byte, error)

// Service writes snapshots as <unixnano>-<seq>.backup.json files and prunes old ones
type Service struct {
	Location string
	Keep     int           // max number of backups kept, 0 for unlimited
	MaxAge   time.Duration // backups older than this are removed, 0 to keep forever
	Source   SnapshotFunc

	seq uint64
}

// Entry is a backup file
type Entry struct {
	Fname string
	Time  time.Time
	Size  int64
}

// Make writes current snapshot into a new backup file and prunes old files
func (s *Service) Make(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := s.Source()
	if err != nil {
		return "", fmt.Errorf("failed to get snapshot: %w", err)
	}
	if err = os.MkdirAll(s.Location, 0o700); err != nil {
		return "", fmt.Errorf("failed to make %s: %w", s.Location, err)
	}

	seq := atomic.AddUint64(&s.seq, 1)
	fname := filepath.Join(s.Location, fmt.Sprintf("%d-%d.backup.json", time.Now().UnixNano(), seq))
	if err = os.WriteFile(fname, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", fname, err)
	}
	log.Printf("[DEBUG] backup %s created, %d bytes", fname, len(data))

	s.List() // prunes
	return fname, nil
}

// List returns backups newest first. Files older than MaxAge and beyond Keep are removed.
func (s *Service) List() (res []Entry) {
	entries, err := os.ReadDir(s.Location)
	if err != nil {
		log.Printf("[WARN] can't get backup list for %s, %s", s.Location, err)
		return []Entry{}
	}

	for _, entry := range entries {
		if entry.IsDir() || !backupName.MatchString(entry.Name()) {
			continue
		}
		finfo, err := entry.Info()
		if err != nil {
			log.Printf("[WARN] can't get backup info for %s, %s", entry.Name(), err)
			continue
		}
		fileName := filepath.Join(s.Location, finfo.Name())
		if s.MaxAge > 0 && finfo.ModTime().Add(s.MaxAge).Before(time.Now()) {
			log.Printf("[DEBUG] backup file %s too old", fileName)
			s.remove(fileName)
			continue
		}
		res = append(res, Entry{Fname: fileName, Time: finfo.ModTime(), Size: finfo.Size()})
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Time.Equal(res[j].Time) {
			return res[i].Fname > res[j].Fname
		}
		return res[i].Time.After(res[j].Time)
	})

	if s.Keep > 0 && len(res) > s.Keep {
		for _, e := range res[s.Keep:] {
			s.remove(e.Fname)
		}
		res = res[:s.Keep]
	}
	if res == nil {
		res = []Entry{}
	}
	return res
}

// Run makes backups on cron schedule like "@daily" or "0 */6 * * *" until ctx canceled. Blocking.
func (s *Service) Run(ctx context.Context, schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if _, err := s.Make(ctx); err != nil {
			log.Printf("[WARN] backup failed, %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", schedule, err)
	}
	log.Printf("[INFO] backups to %s on %q, keep %d", s.Location, schedule, s.Keep)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func (s *Service) remove(fname string) {
	if err := os.Remove(fname); err != nil {
		log.Printf("[WARN] can't delete %s, %s", fname, err)
	}
}

func (s *Service) String() string {
	return fmt.Sprintf("location:%s, keep:%d, max-age:%v", s.Location, s.Keep, s.MaxAge)
}
