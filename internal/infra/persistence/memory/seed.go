package memory

import (
	"geofence/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type seedFile struct {
	Experiences []struct {
		ID          string `koanf:"id"`
		Title       string `koanf:"title"`
		Description string `koanf:"description"`
	} `koanf:"experiences"`

	Subscriptions []struct {
		UserID   string `koanf:"userId"`
		Platform string `koanf:"platform"`
		Endpoint string `koanf:"endpoint"`
		P256dh   string `koanf:"p256dh"`
		Auth     string `koanf:"auth"`
	} `koanf:"subscriptions"`
}

// LoadSeed fills the collaborator tables from a YAML file
func (s *Store) LoadSeed(path string) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return errors.Wrapf(err, "read seed file %s", path)
	}

	var seed seedFile
	if err := k.Unmarshal("", &seed); err != nil {
		return errors.Wrapf(err, "unmarshal seed file %s", path)
	}

	for _, item := range seed.Experiences {
		id, err := uuid.Parse(item.ID)
		if err != nil {
			return errors.Wrapf(err, "invalid experience id %q", item.ID)
		}
		s.PutExperience(&entity.Experience{ID: id, Title: item.Title, Description: item.Description})
	}

	for _, item := range seed.Subscriptions {
		s.PutSubscription(&entity.PushSubscription{
			UserID:   item.UserID,
			Platform: item.Platform,
			Endpoint: item.Endpoint,
			P256dh:   item.P256dh,
			Auth:     item.Auth,
		})
	}

	return nil
}
