package videosender

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

const PlayerPipe = `
	ffplay
		-loglevel warning
		-fflags nobuffer
		-flags low_delay
		-framedrop
		-window_title %s
		-i pipe:0
`

const StreamPipe = `
	ffmpeg
		-i pipe:0
		-vcodec libx264
		-preset ultrafast
		-tune zerolatency
		-g 40
		-acodec aac
		-vf scale=320:180
		-f dash
		-dash_segment_type mp4
		-seg_duration 0.1
		-use_template 1
		-http_persistent 1
		%sdrone/video/fs/feed
`

// StreamCamera sends the local camera instead of the drone, for bench tests of the surface.
// It ignores the drone's stream.
const StreamCamera = `
	ffmpeg
		-f avfoundation
		-framerate 30
		-video_size 640x480
		-i 0:none
		-vcodec libx264
		-preset ultrafast
		-tune zerolatency
		-g 40
		-acodec aac
		-f dash
		-dash_segment_type mp4
		-seg_duration 0.1
		-use_template 1
		-http_persistent 1
		%sdrone/video/fs/feed
`

const stdinInput = "pipe:0"

var errSourceClosed = errors.New("video source closed")

type Sender struct {
	debugLog      bool
	stdin         bool
	name          string
	args          []string
	sourceStream  <-chan []byte
	retryInterval time.Duration
	blocks        atomic.Uint64
}

// New prepares a decoder command. target fills the %s of the command: the
// window title for PlayerPipe, the handler host URL for the stream commands.
func New(target string, sourceStream <-chan []byte, command string, debugLog bool) *Sender {
	name, args := parseCommand(command, target)
	return &Sender{
		debugLog:      debugLog,
		stdin:         strings.Contains(command, stdinInput),
		name:          name,
		args:          args,
		sourceStream:  sourceStream,
		retryInterval: 5 * time.Second,
	}
}

func (s *Sender) Run(ctx context.Context) {
	logrus.Warnf("started video sender")
	timer := time.NewTimer(0)
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			logrus.Warnf("stopped video sender")
			return
		case <-timer.C:
			err := s.runDecoder(ctx)
			if errors.Is(err, errSourceClosed) {
				logrus.Warnf("video source closed, stopped video sender")
				return
			}
			if err != nil && ctx.Err() == nil {
				logrus.Error(err)
			}
			timer.Reset(s.retryInterval)
		}
	}
}

func (s *Sender) runDecoder(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, s.name, s.args...)

	var stdinPipe io.WriteCloser
	if s.stdin {
		var err error
		if stdinPipe, err = cmd.StdinPipe(); err != nil {
			return fmt.Errorf("error opening stdin pipe: %w", err)
		}
	}
	var stderrPipe io.ReadCloser
	if s.debugLog {
		var err error
		if stderrPipe, err = cmd.StderrPipe(); err != nil {
			return fmt.Errorf("error opening stderr pipe: %w", err)
		}
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("error starting command: %w", err)
	}
	logrus.WithField("cmd", s.name).Info("decoder started")

	stderrDone := make(chan struct{})
	if stderrPipe != nil {
		go func() {
			defer close(stderrDone)
			logStderr(stderrPipe)
		}()
	} else {
		close(stderrDone)
	}

	var pumpErr error
	if stdinPipe != nil {
		pumpErr = s.pump(ctx, stdinPipe)
		_ = stdinPipe.Close()
	}
	// Wait closes the pipes, stderr has to be drained first
	<-stderrDone
	waitErr := cmd.Wait()
	if pumpErr != nil {
		return pumpErr
	}
	if waitErr != nil {
		return fmt.Errorf("decoder exited: %w", waitErr)
	}
	return nil
}

func (s *Sender) pump(ctx context.Context, dst io.Writer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case block, ok := <-s.sourceStream:
			if !ok {
				return errSourceClosed
			}
			if _, err := dst.Write(block); err != nil {
				return fmt.Errorf("error writing stream block: %w", err)
			}
			if n := s.blocks.Add(1); n == 1 {
				logrus.Info("first video block sent to decoder")
			}
		}
	}
}

var spaceRegexp = regexp.MustCompile(`[\t\n\s]+`)

func parseCommand(command string, target string) (name string, args []string) {
	if strings.Contains(command, "%s") {
		command = fmt.Sprintf(command, target) // fill target
	}
	command = spaceRegexp.ReplaceAllLiteralString(command, " ") // delete all tabs and new lines
	command = strings.TrimSpace(command)                        // delete left and right space
	lines := strings.Split(command, " ")
	if len(lines) < 1 || lines[0] == "" {
		return
	}
	return lines[0], lines[1:]
}

func logStderr(stderrPipe io.Reader) {
	bufStderr := bufio.NewScanner(stderrPipe)
	for bufStderr.Scan() {
		if line := bufStderr.Text(); len(line) > 0 {
			logrus.WithField("label", "FFMPEG_STDERR").Warn(line)
		}
	}
	if err := bufStderr.Err(); err != nil {
		logrus.Debug(fmt.Errorf("error reading stderr: %w", err))
	}
}
