// Package api implements the HTTP front end of Lexi Control.
//
// This package provides:
//   - The PIN-gated control panel pages (lock screen, panel, calendar, upcoming)
//   - JSON endpoints polled by the panel (/status.json, /events.json)
//   - Start/stop command routes that proxy to the EEG cloud
//   - Middleware stack (request ID, logging, recovery, body size limit)
//
// # Architecture
//
// The server sits between the browser and two vendor APIs: the speech
// recognition control API (instance listing, start/stop) and the events
// API (booking records). Every route except /unlock and /healthz is
// behind the session gate; a locked request never reaches the vendor.
//
//	Browser ──HTTP──▶ api ──▶ session.Gate   (authorise)
//	                      ──▶ eeg.Directory  (resolve instance)
//	                      ──▶ eeg.Client     (status / commands)
//	                      ──▶ schedule.Service (bookings)
//	                      ──▶ panel.Renderer (HTML pages)
//
// # Degradation
//
// Vendor failures never surface as HTTP errors on read paths: the panel
// renders placeholder status and the calendar renders empty. Command
// routes report failure through the flash message instead of a status
// code, so the panel stays usable while the cloud is flaky.
package api
