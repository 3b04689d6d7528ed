// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package block

import (
	"os"
	"path/filepath"
	"strings"
)

// DeviceProperties describes the device properties read from sysfs.
type DeviceProperties struct {
	// DeviceName is the name of the device under /dev.
	DeviceName string
	// Model from /sys/block/*/device/model.
	Model string
	// Serial from /sys/block/*/device/serial.
	Serial string
	// WWID from /sys/block/*/wwid.
	WWID string
	// BusPath is the path of the device on its bus.
	BusPath string
	// SubSystem is the resolved path of the device subsystem.
	SubSystem string
	// Rotational is true for spinning disks.
	Rotational bool
}

// GetProperties gathers device properties from sysfs.
func (d *Device) GetProperties() (*DeviceProperties, error) {
	sysFsPath, err := d.sysFsPath()
	if err != nil {
		return nil, err
	}

	fullPath, err := os.Readlink(sysFsPath)
	if err != nil {
		return nil, err
	}

	busPath := fullPath

	if idx := strings.Index(busPath, "/devices/"); idx >= 0 {
		busPath = busPath[idx+len("/devices"):]
	}

	if idx := strings.Index(busPath, "/block/"); idx >= 0 {
		busPath = busPath[:idx]
	}

	subSystem, err := filepath.EvalSymlinks(filepath.Join(sysFsPath, "subsystem"))
	if err != nil {
		return nil, err
	}

	serial := readSysFsFile(filepath.Join(sysFsPath, "serial"))
	if serial == "" {
		serial = readSysFsFile(filepath.Join(sysFsPath, "device", "serial"))
	}

	wwid := readSysFsFile(filepath.Join(sysFsPath, "wwid"))
	if wwid == "" {
		wwid = readSysFsFile(filepath.Join(sysFsPath, "device", "wwid"))
	}

	return &DeviceProperties{
		DeviceName: filepath.Join("/dev", filepath.Base(fullPath)),
		Model:      readSysFsFile(filepath.Join(sysFsPath, "device", "model")),
		Serial:     serial,
		WWID:       wwid,
		BusPath:    busPath,
		SubSystem:  subSystem,
		Rotational: readSysFsFile(filepath.Join(sysFsPath, "queue", "rotational")) == "1",
	}, nil
}
