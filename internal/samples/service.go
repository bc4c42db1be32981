package samples

import (
	"context"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"resume-scorer/internal/extract"
	"resume-scorer/internal/shared/storage/object"
	"resume-scorer/internal/shared/telemetry"
	"resume-scorer/internal/shared/util"
)

// Kind separates resumes from job descriptions.
type Kind string

const (
	KindResume Kind = "resume"
	KindJob    Kind = "job"
)

var kindPrefix = map[Kind]string{
	KindResume: "resumes",
	KindJob:    "jobs",
}

// ParseKind accepts the singular or plural form.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "resume", "resumes":
		return KindResume, nil
	case "job", "jobs":
		return KindJob, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}

// Sample describes one stored sample document.
type Sample struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Key    string `json:"-"`
	Size   int64  `json:"size"`
	Source string `json:"source"`
}

// Service reads samples from the configured store, falling back to the
// built-in set for ids the store does not have.
type Service struct {
	stores []namedStore
}

type namedStore struct {
	name  string
	store object.ObjectStore
}

// NewService builds a Service. store may be nil, in which case only built-in
// samples are served.
func NewService(store object.ObjectStore) *Service {
	var stores []namedStore
	if store != nil {
		stores = append(stores, namedStore{name: "store", store: store})
	}
	stores = append(stores, namedStore{name: "builtin", store: newBuiltinStore()})
	return &Service{stores: stores}
}

// List returns the samples of kind, sorted by id. Stores are listed
// concurrently; a store that fails to list is logged and skipped.
func (s *Service) List(ctx context.Context, kind Kind) ([]Sample, error) {
	prefix, ok := kindPrefix[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	listed := make([][]object.Info, len(s.stores))
	g, gCtx := errgroup.WithContext(ctx)
	for i, ns := range s.stores {
		i, ns := i, ns
		g.Go(func() error {
			infos, err := ns.store.List(gCtx, prefix)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				telemetry.Warn("samples.list_failed", map[string]any{"source": ns.name, "prefix": prefix, "error": err.Error()})
				return nil
			}
			listed[i] = infos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := map[string]Sample{}
	for i, ns := range s.stores {
		for _, info := range listed[i] {
			id := idFromKey(info.Key)
			if id == "" {
				continue
			}
			if _, seen := byID[id]; seen {
				continue
			}
			byID[id] = Sample{ID: id, Kind: kind, Key: info.Key, Size: info.Size, Source: ns.name}
		}
	}

	out := make([]Sample, 0, len(byID))
	for _, sample := range byID {
		out = append(out, sample)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Text returns the extracted text of sample id.
func (s *Service) Text(ctx context.Context, kind Kind, id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	all, err := s.List(ctx, kind)
	if err != nil {
		return "", err
	}
	for _, sample := range all {
		if sample.ID != id {
			continue
		}
		store := s.storeNamed(sample.Source)
		text, err := extract.ExtractText(ctx, store, sample.Key, "")
		if errors.Is(err, object.ErrNotFound) {
			return "", fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
		}
		return text, err
	}
	return "", fmt.Errorf("%w: %s %s", ErrNotFound, kind, id)
}

func (s *Service) storeNamed(name string) object.ObjectStore {
	for _, ns := range s.stores {
		if ns.name == name {
			return ns.store
		}
	}
	return nil
}

func validateID(id string) error {
	clean, err := util.CleanKeySegment(id)
	if err != nil || clean != id || strings.HasPrefix(id, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// idFromKey maps "resumes/backend-engineer.txt" to "backend-engineer".
func idFromKey(key string) string {
	base := path.Base(key)
	if strings.HasPrefix(base, ".") {
		return ""
	}
	return strings.TrimSuffix(base, path.Ext(base))
}
