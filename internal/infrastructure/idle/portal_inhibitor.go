// Package idle provides screensaver/idle inhibition via the XDG Desktop
// Portal, so the screen stays on while a sleep session counts down.
package idle

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/sleepywhaleco/sleepywhale/internal/application/port"
	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalInterface = "org.freedesktop.portal.Inhibit"
	requestIface    = "org.freedesktop.portal.Request"

	// Inhibit flags from the portal spec. Only idle is inhibited: suspend
	// must stay allowed, it is this application's whole point.
	flagIdle = 8
)

// Compile-time interface check.
var _ port.IdleInhibitor = (*PortalInhibitor)(nil)

// PortalInhibitor implements idle inhibition using the XDG Desktop Portal.
// Works on Wayland with any compositor. Degrades to a no-op when D-Bus or
// the portal is unavailable.
type PortalInhibitor struct {
	conn            *dbus.Conn
	requestPath     dbus.ObjectPath
	refcount        int
	supported       bool
	requestComplete bool // portal sent a Response; the request object is gone
	mu              sync.Mutex
}

// NewPortalInhibitor creates a portal-based idle inhibitor.
func NewPortalInhibitor(ctx context.Context) *PortalInhibitor {
	log := logging.FromContext(ctx)

	inhibitor := &PortalInhibitor{}

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: cannot connect to D-Bus session bus")
		return inhibitor
	}
	inhibitor.conn = conn

	var version uint32
	obj := conn.Object(portalDest, portalPath)
	if err := obj.Call("org.freedesktop.DBus.Properties.Get", 0,
		portalInterface, "version").Store(&version); err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: portal not available")
		return inhibitor
	}

	inhibitor.supported = true
	log.Debug().Uint32("version", version).Msg("idle inhibitor: portal available")
	return inhibitor
}

// Inhibit increments the inhibit refcount. First call activates inhibition.
func (p *PortalInhibitor) Inhibit(ctx context.Context, reason string) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.refcount++
	if p.refcount > 1 {
		return nil
	}

	if !p.supported || p.conn == nil {
		log.Debug().Msg("idle inhibitor: not supported, skipping")
		return nil
	}

	options := map[string]dbus.Variant{
		"reason": dbus.MakeVariant(reason),
	}

	var handlePath dbus.ObjectPath
	obj := p.conn.Object(portalDest, portalPath)
	err := obj.Call(portalInterface+".Inhibit", 0,
		"", // window identifier (empty for non-sandboxed)
		uint32(flagIdle),
		options,
	).Store(&handlePath)
	if err != nil {
		p.refcount--
		log.Warn().Err(err).Msg("idle inhibitor: failed to inhibit")
		return fmt.Errorf("portal inhibit: %w", err)
	}

	p.requestPath = handlePath
	p.requestComplete = false

	// Some portals (GNOME) complete the request immediately with a Response
	// signal, removing the Request object; track that so Uninhibit does not
	// close a non-existent object.
	go p.watchForResponse(ctx, handlePath)

	log.Info().Str("handle", string(handlePath)).Str("reason", reason).Msg("idle inhibitor: activated")
	return nil
}

func (p *PortalInhibitor) watchForResponse(ctx context.Context, handlePath dbus.ObjectPath) {
	log := logging.FromContext(ctx)

	if p.conn == nil {
		return
	}

	matchRule := fmt.Sprintf(
		"type='signal',interface='%s',member='Response',path='%s'",
		requestIface, handlePath,
	)
	if err := p.conn.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, matchRule).Err; err != nil {
		log.Debug().Err(err).Msg("idle inhibitor: failed to add signal match")
		return
	}

	signals := make(chan *dbus.Signal, 1)
	p.conn.Signal(signals)
	defer func() {
		p.conn.RemoveSignal(signals)
		_ = p.conn.BusObject().Call("org.freedesktop.DBus.RemoveMatch", 0, matchRule).Err
	}()

	for {
		select {
		case sig := <-signals:
			if sig == nil {
				return
			}
			if sig.Path == handlePath && sig.Name == requestIface+".Response" {
				p.mu.Lock()
				p.requestComplete = true
				p.mu.Unlock()
				log.Debug().Str("handle", string(handlePath)).Msg("idle inhibitor: request completed by portal")
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Uninhibit decrements the refcount. When zero, releases inhibition.
func (p *PortalInhibitor) Uninhibit(ctx context.Context) error {
	log := logging.FromContext(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.refcount <= 0 {
		return nil
	}

	p.refcount--
	if p.refcount > 0 {
		return nil
	}

	if !p.supported || p.conn == nil || p.requestPath == "" {
		return nil
	}

	if p.requestComplete {
		p.requestPath = ""
		return nil
	}

	obj := p.conn.Object(portalDest, p.requestPath)
	_ = obj.Call(requestIface+".Close", 0).Err

	log.Info().Msg("idle inhibitor: deactivated")
	p.requestPath = ""
	return nil
}

// IsInhibited returns true if currently inhibiting idle.
func (p *PortalInhibitor) IsInhibited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.refcount > 0
}

// Close releases the D-Bus connection.
func (p *PortalInhibitor) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	p.supported = false
	return err
}
