// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-code-review/internal/config"
	"github.com/MKhiriev/go-code-review/internal/logger"
	"github.com/MKhiriev/go-code-review/models"
)

type sendFunc func(ctx context.Context, addr string, auth smtp.Auth, from string, to []string, msg []byte) error

type smtpMailer struct {
	addr string
	from string
	auth smtp.Auth
	send sendFunc

	logger *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] relaying through cfg.Host:cfg.Port.
// PLAIN auth is used when a username is set; the sender is cfg.From or,
// when empty, cfg.Username. With an empty host every Send returns
// [ErrMailerNotConfigured].
func NewSMTPMailer(cfg config.SMTP, logger *logger.Logger) Mailer {
	m := &smtpMailer{
		addr:   net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		from:   cfg.From,
		send:   sendMail,
		logger: logger,
	}
	if cfg.Host == "" {
		m.addr = ""
	}
	if m.from == "" {
		m.from = cfg.Username
	}
	if cfg.Username != "" {
		m.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return m
}

// Send implements [Mailer].
func (m *smtpMailer) Send(ctx context.Context, email models.Email) error {
	log := logger.FromContext(ctx)
	if m.addr == "" {
		return ErrMailerNotConfigured
	}

	to, err := mail.ParseAddress(email.To)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRecipient, err)
	}

	msg, err := buildMessage(m.from, to.Address, email.Subject, email.Body, time.Now())
	if err != nil {
		return err
	}

	if err = m.send(ctx, m.addr, m.auth, m.from, []string{to.Address}, msg); err != nil {
		log.Err(err).
			Str("func", "*smtpMailer.Send").
			Str("to", to.Address).
			Msg("mail delivery failed")
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	log.Info().
		Str("func", "*smtpMailer.Send").
		Str("to", to.Address).
		Msg("mail sent")
	return nil
}

func buildMessage(from, to, subject, body string, date time.Time) ([]byte, error) {
	for _, h := range []string{from, to, subject} {
		if strings.ContainsAny(h, "\r\n") {
			return nil, ErrInvalidHeader
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", date.Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: quoted-printable\r\n")
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(strings.ReplaceAll(body, "\n", "\r\n"))); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// sendMail is smtp.SendMail bounded by ctx: the dial honours cancellation and
// the connection deadline follows the context deadline.
func sendMail(ctx context.Context, addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	host, _, _ := net.SplitHostPort(addr)
	c, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if auth != nil {
		if ok, _ := c.Extension("AUTH"); ok {
			if err = c.Auth(auth); err != nil {
				return err
			}
		}
	}

	if err = c.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err = c.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	return c.Quit()
}
