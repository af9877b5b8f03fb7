package application

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nextcheck/nextcheck/internal/domain"
)

// HistoryService records validation runs and reads them back.
type HistoryService struct {
	history domain.RunHistory
	git     domain.GitInfo
	logger  *slog.Logger
	now     func() time.Time
}

func NewHistoryService(history domain.RunHistory, git domain.GitInfo, logger *slog.Logger) *HistoryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HistoryService{history: history, git: git, logger: logger, now: time.Now}
}

// Record appends a summary of report to the project's run history. The
// commit hash is attached when the project is a git repository.
func (s *HistoryService) Record(projectPath string, report *domain.Report) (domain.RunEntry, error) {
	var commit string
	if s.git != nil {
		hash, err := s.git.CommitHash(projectPath)
		if err != nil {
			s.logger.Debug("no commit hash", "path", projectPath, "err", err)
		} else {
			commit = hash
		}
	}

	entry := domain.NewRunEntry(report, s.now().UTC().Format(time.RFC3339), commit)
	if err := s.history.Save(projectPath, entry); err != nil {
		return entry, fmt.Errorf("saving history: %w", err)
	}
	return entry, nil
}

// List returns the recorded runs, oldest first. limit <= 0 returns all.
func (s *HistoryService) List(projectPath string, limit int) ([]domain.RunEntry, error) {
	entries, err := s.history.Load(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	if entries == nil {
		entries = []domain.RunEntry{}
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}
