// Package tui implements the full-screen terminal front-end: a Login screen,
// a Register screen and a Home screen reached after signing in.
//
// # Architecture
//
// AppModel is the coordinator. It owns a router.Stack, a submit.Controller
// and a queue of modal alerts, and mounts a fresh screen model (with a fresh
// form) whenever the route changes. Screens raise requests (submit, follow the
// link, go back, sign out) through flags that AppModel reads after each update.
//
// Submits run as Bubble Tea commands so the request never blocks rendering.
// The outcome comes back as a message and is applied on the update loop,
// which is where alerts are queued and the router is moved.
//
// # Floating labels
//
// Every input is drawn as a rounded box. The field's label is rendered from
// form.StyleAt(progress) on each frame: a resting label sits inside the box, a
// floated one on its top border, and the color and weight blend across the
// tween. Frame ticks are scheduled only while a label is moving.
//
// # Usage Example
//
//	client := authapi.NewClient("http://localhost:3000")
//	app := tui.NewAppModel(client, tui.Options{APIURL: client.BaseURL})
//	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
//	    return err
//	}
//
// # Keys
//
//	tab / ↓          next field
//	shift+tab / ↑    previous field
//	enter            next field, or submit from the last field or the button
//	ctrl+r           register (login screen)
//	ctrl+l           login (register screen)
//	esc              back
//	enter / esc      dismiss an alert
//	ctrl+c           quit
package tui
