package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/cardvault-dev/cardvault/internal/config"
	"github.com/cardvault-dev/cardvault/internal/remote"
	"github.com/cardvault-dev/cardvault/internal/session"
	"github.com/cardvault-dev/cardvault/internal/store"
)

// vault bundles the handles every command works through: the config,
// the card store, and the session, all rooted in one directory.
type vault struct {
	dir   string
	cfg   *config.Config
	cards *store.Store
	sess  *session.Manager
	log   *logrus.Logger
}

// openVault loads an initialized vault directory.
func openVault(opts *rootOptions) (*vault, error) {
	dir, err := filepath.Abs(opts.vault)
	if err != nil {
		return nil, fmt.Errorf("resolving vault path: %w", err)
	}

	if _, err := os.Stat(filepath.Join(dir, config.FileName)); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s is not a vault (run \"cardvault init\" first)", dir)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	cards, err := store.Open(dir)
	if err != nil {
		return nil, err
	}
	sess, err := session.Open(dir)
	if err != nil {
		return nil, err
	}

	return &vault{
		dir:   dir,
		cfg:   cfg,
		cards: cards,
		sess:  sess,
		log:   opts.logger(),
	}, nil
}

// client builds the remote client for this vault.
func (v *vault) client() (*remote.Client, error) {
	if v.cfg.Server == "" {
		return nil, fmt.Errorf("no server configured (set server in %s or CARDVAULT_SERVER)", config.FileName)
	}
	return remote.New(v.cfg.Server, v.cfg.Device, v.sess, v.log), nil
}
