// Package server provides the network listeners the HTTP app is served
// on, with and without TLS.
package server

import (
	"crypto/tls"
	"fmt"
	"net"
)

// SecurityLayer builds the listener the application serves on.
type SecurityLayer interface {
	Listen(addr string) (net.Listener, error)
}

// TLSListener serves on a TLS listener backed by a certificate pair on
// disk.
type TLSListener struct {
	certFile string
	keyFile  string
}

func NewTLSListener(certFile, keyFile string) *TLSListener {
	return &TLSListener{
		certFile: certFile,
		keyFile:  keyFile,
	}
}

func (l *TLSListener) Listen(addr string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(l.certFile, l.keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	return tls.Listen("tcp", addr, &tls.Config{
		Certificates: []tls.Certificate{cert},
	})
}

// PlainListener serves on an unencrypted TCP listener.
type PlainListener struct{}

func NewPlainListener() *PlainListener {
	return &PlainListener{}
}

func (l *PlainListener) Listen(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}
