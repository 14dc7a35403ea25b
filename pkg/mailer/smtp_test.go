package mailer_test

import (
	"bufio"
	"context"
	"encoding/base64"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semhq/campaigner/pkg/mailer"
)

type delivered struct {
	from string
	to   []string
	data string
}

// relay is a minimal plaintext SMTP server on the loopback interface.
type relay struct {
	ln       net.Listener
	user     string
	password string

	mu       sync.Mutex
	messages []delivered
	conns    int
}

func startRelay(t *testing.T, user, password string) *relay {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	r := &relay{ln: ln, user: user, password: password}
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			r.mu.Lock()
			r.conns++
			r.mu.Unlock()
			go r.serve(conn)
		}
	}()
	return r
}

func (r *relay) port() int {
	return r.ln.Addr().(*net.TCPAddr).Port
}

func (r *relay) connections() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conns
}

func (r *relay) delivered() []delivered {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]delivered(nil), r.messages...)
}

func (r *relay) serve(conn net.Conn) {
	defer func() { _ = conn.Close() }()

	rd := bufio.NewReader(conn)
	reply := func(s string) { _, _ = conn.Write([]byte(s + "\r\n")) }

	reply("220 127.0.0.1 ESMTP test")

	var cur delivered
	for {
		line, err := rd.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		verb := strings.ToUpper(strings.SplitN(line, " ", 2)[0])

		switch verb {
		case "EHLO", "HELO":
			reply("250-127.0.0.1")
			reply("250 AUTH PLAIN")
		case "AUTH":
			parts := strings.Fields(line)
			if len(parts) != 3 {
				reply("501 syntax error")
				continue
			}
			raw, _ := base64.StdEncoding.DecodeString(parts[2])
			fields := strings.Split(string(raw), "\x00")
			if len(fields) == 3 && fields[1] == r.user && fields[2] == r.password {
				reply("235 2.7.0 Authentication successful")
			} else {
				reply("535 5.7.8 Username and Password not accepted")
			}
		case "MAIL":
			cur = delivered{from: strings.TrimPrefix(line, "MAIL FROM:")}
			reply("250 OK")
		case "RCPT":
			cur.to = append(cur.to, strings.TrimPrefix(line, "RCPT TO:"))
			reply("250 OK")
		case "DATA":
			reply("354 go ahead")
			var b strings.Builder
			for {
				l, err := rd.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				b.WriteString(l)
			}
			cur.data = b.String()
			r.mu.Lock()
			r.messages = append(r.messages, cur)
			r.mu.Unlock()
			reply("250 queued")
		case "NOOP", "RSET":
			reply("250 OK")
		case "QUIT":
			reply("221 bye")
			return
		default:
			reply("502 not implemented")
		}
	}
}

func newDispatcher(r *relay, cfg mailer.Config) *mailer.Dispatcher {
	cfg.Host = "127.0.0.1"
	cfg.Port = r.port()
	cfg.Security = mailer.SecurityNone
	return mailer.NewDispatcher(cfg)
}

func TestDispatcher_Send_Success(t *testing.T) {
	t.Parallel()

	r := startRelay(t, "a@x.com", "app-pass")
	d := newDispatcher(r, mailer.Config{})

	msg := mailer.NewMessage(
		mailer.Credentials{Address: "a@x.com", Password: "app-pass"},
		"b@y.com",
		"Event Invitation regarding Launch",
		"Hi,\nJoin us.",
	)
	res := d.Send(context.Background(), msg)

	require.True(t, res.OK(), res.Reason())
	assert.Empty(t, res.Reason())

	got := r.delivered()
	require.Len(t, got, 1)
	assert.Contains(t, got[0].from, "<a@x.com>")
	require.Len(t, got[0].to, 1)
	assert.Contains(t, got[0].to[0], "<b@y.com>")
	assert.Contains(t, got[0].data, "Subject: Event Invitation regarding Launch\r\n")
	assert.Contains(t, got[0].data, "\r\n\r\nHi,\r\nJoin us.")
}

func TestDispatcher_Send_BadCredentials(t *testing.T) {
	t.Parallel()

	r := startRelay(t, "a@x.com", "app-pass")
	d := newDispatcher(r, mailer.Config{})

	res := d.Send(context.Background(), mailer.NewMessage(
		mailer.Credentials{Address: "a@x.com", Password: "wrong"},
		"b@y.com", "s", "b",
	))

	require.False(t, res.OK())
	assert.Contains(t, res.Reason(), "535")
	assert.Empty(t, r.delivered())
}

func TestDispatcher_Send_NotConfigured(t *testing.T) {
	t.Parallel()

	r := startRelay(t, "a@x.com", "app-pass")
	d := newDispatcher(r, mailer.Config{})

	res := d.Send(context.Background(), mailer.NewMessage(d.DefaultSender(), "b@y.com", "s", "b"))

	require.False(t, res.OK())
	assert.Equal(t, "sender email or password not configured", res.Reason())
	assert.Zero(t, r.connections())
}

func TestDispatcher_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	d := mailer.NewDispatcher(mailer.Config{})
	res := d.Send(context.Background(), mailer.NewMessage(
		mailer.Credentials{Address: "a@x.com", Password: "p"}, "", "s", "b",
	))

	require.False(t, res.OK())
	assert.Equal(t, mailer.ErrNoRecipient.Error(), res.Reason())
}

func TestDispatcher_Send_InvalidAddress(t *testing.T) {
	t.Parallel()

	r := startRelay(t, "a@x.com", "app-pass")
	d := newDispatcher(r, mailer.Config{})

	res := d.Send(context.Background(), mailer.NewMessage(
		mailer.Credentials{Address: "a@x.com", Password: "app-pass"}, "not an address", "s", "b",
	))

	require.False(t, res.OK())
	assert.NotEmpty(t, res.Reason())
	assert.Zero(t, r.connections())
}

func TestDispatcher_Send_ConnectionRefused(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	d := mailer.NewDispatcher(mailer.Config{Host: "127.0.0.1", Port: port, Security: mailer.SecurityNone})

	res := d.Send(context.Background(), mailer.NewMessage(
		mailer.Credentials{Address: "a@x.com", Password: "p"}, "b@y.com", "s", "b",
	))

	require.False(t, res.OK())
	assert.Contains(t, res.Reason(), "dial")
}

func TestDispatcher_Send_SilentRelay(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	// Accepts but never greets.
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		time.Sleep(2 * time.Second)
		_ = conn.Close()
	}()

	d := mailer.NewDispatcher(mailer.Config{
		Host:        "127.0.0.1",
		Port:        ln.Addr().(*net.TCPAddr).Port,
		Security:    mailer.SecurityNone,
		DialTimeout: 100 * time.Millisecond,
	})

	res := d.Send(context.Background(), mailer.NewMessage(
		mailer.Credentials{Address: "a@x.com", Password: "p"}, "b@y.com", "s", "b",
	))

	require.False(t, res.OK())
	assert.NotEmpty(t, res.Reason())
}

func TestDispatcher_DefaultSender(t *testing.T) {
	t.Parallel()

	d := mailer.NewDispatcher(mailer.Config{SenderEmail: "ops@x.com", SenderPassword: "pw"})
	assert.Equal(t, mailer.Credentials{Address: "ops@x.com", Password: "pw"}, d.DefaultSender())
	assert.True(t, d.DefaultSender().Configured())
}
