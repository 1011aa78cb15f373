// Package discovery finds LXI instruments on the local network via
// mDNS/DNS-SD. DS1000Z-family oscilloscopes announce their raw SCPI
// socket as _scpi-raw._tcp and describe themselves in TXT records
// (manufacturer, model, serial number, firmware).
package discovery
