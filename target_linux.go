//go:build linux

package keep

const currentTarget = TargetLinux
