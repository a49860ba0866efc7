// Package midi ingests control-surface events on a capture thread and
// turns them into scaled parameter updates for a per-frame consumer,
// with latest-value semantics and runtime learn binding.
package midi

import (
	"fmt"
	"log/slog"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

// Manager handles MIDI input port discovery and the single active
// connection.
type Manager struct {
	mu     sync.Mutex
	conn   *Conn
	status string
	log    *slog.Logger
}

// NewManager creates a new MIDI manager. A nil logger falls back to
// slog.Default().
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{status: "Disconnected", log: logger}
}

// Close disconnects and cleans up the MIDI driver.
func (m *Manager) Close() {
	m.Disconnect()
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports.
func (m *Manager) ListInPorts() []string {
	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// GetInPort returns an input port by name, or nil if absent.
func (m *Manager) GetInPort(name string) drivers.In {
	ins := midi.GetInPorts()
	for _, in := range ins {
		if in.String() == name {
			return in
		}
	}
	return nil
}

// Status returns the last connection status message for display.
func (m *Manager) Status() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// Connected reports whether an input connection is active.
func (m *Manager) Connected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn != nil
}

// Connect opens the named input port and forwards its Control Change
// events to ctrl. The port is consumed by the connection: at most one
// connection may be active, and Connect fails until the returned Conn
// is closed. The listen callback runs on the driver's capture thread
// and does nothing beyond masking the message and handing it to
// ctrl.HandleRawEvent.
func (m *Manager) Connect(portName string, ctrl *Controller) (*Conn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil {
		return nil, fmt.Errorf("already connected to %s", m.conn.port)
	}

	in := m.GetInPort(portName)
	if in == nil {
		m.status = fmt.Sprintf("Port not found: %s", portName)
		return nil, fmt.Errorf("input port not found: %s", portName)
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var channel, cc, value uint8
		if msg.GetControlChange(&channel, &cc, &value) {
			ctrl.HandleRawEvent(cc&0x7F, value&0x7F)
		}
	})
	if err != nil {
		m.status = fmt.Sprintf("Connect error: %v", err)
		return nil, fmt.Errorf("failed to start listening: %w", err)
	}

	conn := &Conn{manager: m, port: portName, stop: stop}
	m.conn = conn
	m.status = "Connected: " + portName
	m.log.Info("MIDI connected", "port", portName)
	return conn, nil
}

// Disconnect closes the active connection, if any.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	conn := m.conn
	m.mu.Unlock()
	if conn != nil {
		conn.Close()
	}
}

// Conn is an active input connection. It owns the listener on the port
// it was opened for; the port cannot be reopened until Close.
type Conn struct {
	manager *Manager
	port    string
	stop    func()
}

// Port returns the name of the connected input port.
func (c *Conn) Port() string {
	return c.port
}

// Close stops the listener and releases the port. Idempotent.
func (c *Conn) Close() {
	c.manager.mu.Lock()
	defer c.manager.mu.Unlock()

	if c.stop == nil {
		return
	}
	c.stop()
	c.stop = nil
	if c.manager.conn == c {
		c.manager.conn = nil
		c.manager.status = "Disconnected"
	}
	c.manager.log.Info("MIDI disconnected", "port", c.port)
}
