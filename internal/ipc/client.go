package ipc

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"
)

// ErrCommandFailed indicates the daemon rejected a control request.
var ErrCommandFailed = errors.New("hyprpaper command failed")

const (
	dialTimeout    = 2 * time.Second
	requestTimeout = 5 * time.Second
)

// Client issues control requests against the hyprpaper socket. The daemon
// serves one request per connection, so each call dials fresh.
type Client struct {
	socketPath string
}

// NewClient builds a client for the given control socket path.
func NewClient(socketPath string) *Client {
	return &Client{socketPath: socketPath}
}

func (c *Client) request(command string) (string, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, dialTimeout)
	if err != nil {
		return "", fmt.Errorf("connect to hyprpaper socket %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(requestTimeout)); err != nil {
		return "", fmt.Errorf("set request deadline: %w", err)
	}
	if _, err := conn.Write([]byte(command)); err != nil {
		return "", fmt.Errorf("send %q: %w", command, err)
	}

	reply, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("read reply for %q: %w", command, err)
	}
	return strings.TrimRight(string(reply), "\n"), nil
}

func (c *Client) command(command string) error {
	reply, err := c.request(command)
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(reply), "ok") {
		return fmt.Errorf("%w: %q: %s", ErrCommandFailed, command, reply)
	}
	return nil
}

// ListLoaded returns the wallpaper paths the daemon reports as preloaded.
func (c *Client) ListLoaded() (map[string]struct{}, error) {
	reply, err := c.request("listloaded")
	if err != nil {
		return nil, err
	}
	loaded := make(map[string]struct{})
	for _, line := range strings.Split(reply, "\n") {
		path := strings.TrimSpace(line)
		if path == "" || path == "no wallpapers loaded" {
			continue
		}
		loaded[path] = struct{}{}
	}
	return loaded, nil
}

// Preload asks the daemon to load the image at path into memory.
func (c *Client) Preload(path string) error {
	return c.command("preload " + path)
}

// SetWallpaper assigns the rendered fragment to an output.
func (c *Client) SetWallpaper(output, fragment string) error {
	return c.command("wallpaper " + output + "," + fragment)
}

// UnloadAll drops every wallpaper the daemon no longer displays.
func (c *Client) UnloadAll() error {
	return c.command("unload all")
}
