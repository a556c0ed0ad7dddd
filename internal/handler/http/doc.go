// Package http implements the web surface of the portal.
//
// It serves the trigger pages (index, retrieve, self-destruct, exfiltrate)
// rendered from embedded HTML templates, and a small JSON API used by the
// portal console. Request tracing, access logging, panic recovery and
// response compression are applied as chi middleware before requests reach
// the service layer.
package http
