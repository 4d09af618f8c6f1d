package out

import (
	"context"
	"encoding/json"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"rightsdaily/internal/modules/progress/domain"
	progressout "rightsdaily/internal/modules/progress/port/out"
	"rightsdaily/internal/platform/logging"
)

// ProgressKey is the well-known storage key of the progress record.
const ProgressKey = "userProgress"

type KVProgressStore struct {
	storage progressout.Storage
	logger  hclog.Logger
}

func NewKVProgressStore(storage progressout.Storage, logger hclog.Logger) progressout.ProgressStore {
	return &KVProgressStore{storage: storage, logger: logging.OrDiscard(logger).Named("store")}
}

type progressRecord struct {
	CompletedLessons []string `json:"completedLessons"`
	EarnedRewards    []string `json:"earnedRewards"`
	LastActiveDate   *string  `json:"lastActiveDate"`
	CurrentStreak    int      `json:"currentStreak"`
	CurrentLevel     int      `json:"currentLevel"`
}

func (s *KVProgressStore) Load(ctx context.Context) domain.Progress {
	raw, ok, err := s.storage.Read(ctx, ProgressKey)
	if err != nil {
		s.logger.Warn("read progress, using defaults", "error", err)
		return domain.DefaultProgress()
	}
	if !ok {
		return domain.DefaultProgress()
	}
	progress, err := DecodeProgress([]byte(raw))
	if err != nil {
		s.logger.Warn("corrupt progress record, using defaults", "error", err)
		return domain.DefaultProgress()
	}
	return progress
}

func (s *KVProgressStore) Save(ctx context.Context, progress domain.Progress) error {
	payload, err := EncodeProgress(progress)
	if err != nil {
		return err
	}
	return s.storage.Write(ctx, ProgressKey, string(payload))
}

func EncodeProgress(p domain.Progress) ([]byte, error) {
	record := progressRecord{
		CompletedLessons: formatDates(p.CompletedLessons),
		EarnedRewards:    formatDates(p.EarnedRewards),
		CurrentStreak:    p.CurrentStreak,
		CurrentLevel:     p.CurrentLevel,
	}
	if p.LastActiveDate != nil {
		last := p.LastActiveDate.String()
		record.LastActiveDate = &last
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode progress: %w", err)
	}
	return payload, nil
}

// DecodeProgress is lenient per field: missing fields take defaults and
// unparsable dates are dropped. Only a payload that is not a JSON object fails.
// The stored currentLevel is ignored and re-derived from the history.
func DecodeProgress(payload []byte) (domain.Progress, error) {
	var record progressRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return domain.Progress{}, fmt.Errorf("decode progress: %w", err)
	}
	p := domain.DefaultProgress()
	p.CompletedLessons = domain.Dedupe(parseDates(record.CompletedLessons))
	p.EarnedRewards = domain.Dedupe(parseDates(record.EarnedRewards))
	if record.LastActiveDate != nil {
		if last, err := domain.ParseLessonDate(*record.LastActiveDate); err == nil {
			p.LastActiveDate = &last
		}
	}
	p.CurrentStreak = max(0, record.CurrentStreak)
	p.CurrentLevel = domain.DeriveLevel(p.CompletedLessons, p.EarnedRewards)
	return p, nil
}

func formatDates(dates []domain.LessonDate) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.String())
	}
	return out
}

func parseDates(raw []string) []domain.LessonDate {
	out := make([]domain.LessonDate, 0, len(raw))
	for _, r := range raw {
		d, err := domain.ParseLessonDate(r)
		if err != nil {
			continue
		}
		out = append(out, d)
	}
	return out
}
