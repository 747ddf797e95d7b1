package adapter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"net"
	"os/exec"
	"strings"
	"time"
)

// SystemAdapter exposes the host facts checked before a run.
type SystemAdapter interface {
	// Mounts returns the mounted filesystems as device to mount point.
	Mounts(ctx context.Context) (map[string]string, error)

	// NetworkUp reports whether at least one non-loopback interface is up.
	NetworkUp(ctx context.Context) (bool, error)
}

// LocalSystemAdapter reads the mount table with df and the interfaces with the net package.
type LocalSystemAdapter struct {
	timeout time.Duration
}

// NewLocalSystemAdapter constructs a LocalSystemAdapter with a 10s command timeout.
func NewLocalSystemAdapter() *LocalSystemAdapter {
	return &LocalSystemAdapter{
		timeout: 10 * time.Second,
	}
}

// Mounts runs `df -P`, whose output format is fixed by POSIX.
func (a *LocalSystemAdapter) Mounts(ctx context.Context) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "df", "-P")

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("df -P: %w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return parseMounts(stdout.String()), nil
}

// NetworkUp ignores loopback interfaces.
func (a *LocalSystemAdapter) NetworkUp(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	interfaces, err := net.Interfaces()
	if err != nil {
		return false, fmt.Errorf("list network interfaces: %w", err)
	}

	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagLoopback == 0 {
			return true, nil
		}
	}

	return false, nil
}

// parseMounts reads `df -P` output. The mount point is the last column and may contain spaces.
func parseMounts(output string) map[string]string {
	const minFields = 6

	mounts := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(output))

	header := true
	for scanner.Scan() {
		if header {
			header = false

			continue
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) < minFields {
			continue
		}

		mounts[fields[0]] = strings.Join(fields[minFields-1:], " ")
	}

	return mounts
}
