//go:build windows

package keep

const currentTarget = TargetWindows
