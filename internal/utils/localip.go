package utils

import (
	"fmt"
	"net"
)

// LocalIP returns the LAN address of this host by opening a UDP "connection"
// to a public resolver and reading the chosen source address. No packet is
// sent; the OS just picks the outbound interface.
func LocalIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "", fmt.Errorf("detect local ip: %w", err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", fmt.Errorf("detect local ip: unexpected addr %T", conn.LocalAddr())
	}
	return addr.IP.String(), nil
}

// JoinURL builds the address a phone on the same network should open.
func JoinURL(ip, port string) string {
	return fmt.Sprintf("http://%s:%s/", ip, port)
}
