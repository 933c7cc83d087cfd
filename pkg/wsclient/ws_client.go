package wsclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const Path = "drone/ws/"

type MessageType string

const (
	MTCmd    MessageType = "cmd"    // key event from the surface: "D<key>" or "U<key>"
	MTLog    MessageType = "log"    // command feedback
	MTHud    MessageType = "hud"    // hud overlay
	MTStatus MessageType = "status" // window caption
)

type Message struct {
	Type    MessageType
	Content []byte
}

const (
	sendBuffer    = 64
	receiveBuffer = 16
)

// Client keeps a websocket to the handler host open, reconnecting when it
// drops. Messages sent while disconnected are queued until the buffer fills.
type Client struct {
	serverURL         string
	session           string
	dialer            *websocket.Dialer
	reconnectInterval time.Duration
	sendChan          chan Message
	receiveChan       chan Message

	mux          sync.Mutex
	onDisconnect []func()
}

func New(serverURL, session string) *Client {
	return &Client{
		serverURL:         serverURL,
		session:           session,
		dialer:            websocket.DefaultDialer,
		reconnectInterval: 5 * time.Second,
		sendChan:          make(chan Message, sendBuffer),
		receiveChan:       make(chan Message, receiveBuffer),
	}
}

// OnDisconnect registers f to run whenever an established connection drops.
func (c *Client) OnDisconnect(f func()) {
	c.mux.Lock()
	defer c.mux.Unlock()
	c.onDisconnect = append(c.onDisconnect, f)
}

func (c *Client) disconnected() {
	c.mux.Lock()
	hooks := append([]func(){}, c.onDisconnect...)
	c.mux.Unlock()
	for _, f := range hooks {
		f()
	}
}

func (c *Client) SendMessage(message Message) {
	select {
	case c.sendChan <- message:
	default:
		logrus.WithField("type", message.Type).Debug("send buffer full, message dropped")
	}
}

func (c *Client) ReceiveMessage(ctx context.Context) Message {
	select {
	case <-ctx.Done():
		return Message{}
	case msg := <-c.receiveChan:
		return msg
	}
}

func (c *Client) Run(ctx context.Context) {
	logrus.Warnf("started websocket client")
	timer := time.NewTimer(0)
	wsURL, err := c.wsURL()
	if err != nil {
		logrus.Error(fmt.Errorf("error building web socket url: %w", err))
		return
	}
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			logrus.Warnf("stopped websocket client")
			return
		case <-timer.C:
			if err := c.serve(ctx, wsURL); err != nil && ctx.Err() == nil {
				logrus.Error(err)
			}
			timer.Reset(c.reconnectInterval)
		}
	}
}

func (c *Client) wsURL() (string, error) {
	u, err := url.Parse("ws" + strings.TrimPrefix(c.serverURL, "http") + Path)
	if err != nil {
		return "", err
	}
	if c.session != "" {
		q := u.Query()
		q.Set("session", c.session)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c *Client) serve(ctx context.Context, wsURL string) error {
	conn, _, err := c.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("error connecting to server's web socket: %w", err)
	}
	logrus.WithField("url", wsURL).Info("websocket connected")
	defer c.disconnected()

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-connCtx.Done()
		_ = conn.Close()
	}()

	errs := make(chan error, 2)
	go func() { errs <- c.receiveMessages(connCtx, conn) }()
	go func() { errs <- c.sendMessages(connCtx, conn) }()

	err = <-errs
	cancel()
	<-errs
	return err
}

func (c *Client) receiveMessages(ctx context.Context, conn *websocket.Conn) error {
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("error reading message from web socket: %w", err)
		}
		select {
		case c.receiveChan <- msg:
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Client) sendMessages(ctx context.Context, conn *websocket.Conn) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-c.sendChan:
			if err := conn.WriteJSON(msg); err != nil {
				if errors.Is(err, websocket.ErrCloseSent) || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("error writing message to web socket: %w", err)
			}
		}
	}
}
