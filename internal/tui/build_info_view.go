// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/agent-portal/models"
)

// renderBuildInfoWindow shows the console build next to the portal's.
// portal is nil until the portal answered.
func renderBuildInfoWindow(info models.AppBuildInfo, portal *models.VersionResponse, portalErr string) string {
	var b strings.Builder

	b.WriteString("Application: agent-portal console\n")
	b.WriteString("Version: " + valueOrNA(info.BuildVersion()) + "\n")
	b.WriteString("Date: " + valueOrNA(info.BuildDate()) + "\n")
	b.WriteString("Commit: " + valueOrNA(info.BuildCommit()) + "\n\n")

	switch {
	case portal != nil:
		b.WriteString("Portal version: " + valueOrNA(portal.Version) + "\n")
		b.WriteString("Portal date: " + valueOrNA(portal.Date) + "\n")
		b.WriteString("Portal commit: " + valueOrNA(portal.Commit))
	case portalErr != "":
		b.WriteString("Portal: " + portalErr)
	default:
		b.WriteString("Portal: asking...")
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
