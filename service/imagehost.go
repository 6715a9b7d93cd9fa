package service

import (
	"fmt"
	"io"
	"path"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/tieubaoca/answer-engine/config"
	"go.uber.org/zap"
)

// ImageHost publishes knowledge images somewhere the chat widget can load
// them from and returns the public URL.
type ImageHost interface {
	Upload(name string, r io.Reader) (string, error)
	Remove(url string) error
}

// FTPImageHost pushes images to the mall's web FTP. One short-lived
// connection per call; uploads are rare enough that pooling is not worth
// the reconnect handling.
type FTPImageHost struct {
	cfg    config.FTPConfig
	logger *zap.Logger
}

func NewFTPImageHost(cfg config.FTPConfig, logger *zap.Logger) *FTPImageHost {
	return &FTPImageHost{cfg: cfg, logger: logger}
}

func (h *FTPImageHost) connect() (*ftp.ServerConn, error) {
	conn, err := ftp.Dial(h.cfg.Host+":21", ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("ftp dial failed: %w", err)
	}
	if err := conn.Login(h.cfg.User, h.cfg.Password); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("ftp login failed: %w", err)
	}
	return conn, nil
}

// Upload stores the image under a timestamped name and returns its public
// URL.
func (h *FTPImageHost) Upload(name string, r io.Reader) (string, error) {
	conn, err := h.connect()
	if err != nil {
		return "", err
	}
	defer conn.Quit()

	remoteName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), path.Base(name))
	remotePath := path.Join(h.cfg.RemoteDir, remoteName)
	if err := conn.Stor(remotePath, r); err != nil {
		return "", fmt.Errorf("ftp upload failed: %w", err)
	}

	url := h.cfg.PublicBase + "/" + remoteName
	h.logger.Info("image uploaded", zap.String("url", url))
	return url, nil
}

// Remove deletes the hosted file behind the public URL. A missing file is
// not an error; the knowledge entry is going away either way.
func (h *FTPImageHost) Remove(url string) error {
	conn, err := h.connect()
	if err != nil {
		return err
	}
	defer conn.Quit()

	remotePath := path.Join(h.cfg.RemoteDir, path.Base(url))
	if err := conn.Delete(remotePath); err != nil {
		h.logger.Warn("ftp delete failed", zap.String("path", remotePath), zap.Error(err))
	}
	return nil
}
