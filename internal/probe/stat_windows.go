//go:build windows

package probe

import (
	"os"
	"time"

	"golang.org/x/sys/windows"
)

func statFile(fp string) (FileStat, error) {
	p, err := windows.UTF16PtrFromString(fp)
	if err != nil {
		return FileStat{}, &os.PathError{Op: "stat", Path: fp, Err: err}
	}
	// Backup semantics are required to open directories.
	h, err := windows.CreateFile(
		p,
		0,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return FileStat{}, &os.PathError{Op: "stat", Path: fp, Err: err}
	}
	defer windows.CloseHandle(h)

	var data windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &data); err != nil {
		return FileStat{}, &os.PathError{Op: "stat", Path: fp, Err: err}
	}
	return FileStat{
		Size: int64(data.FileSizeHigh)<<32 | int64(data.FileSizeLow),
		ID: FileID{
			Device: uint64(data.VolumeSerialNumber),
			Index:  uint64(data.FileIndexHigh)<<32 | uint64(data.FileIndexLow),
		},
		ModTime: time.Unix(0, data.LastWriteTime.Nanoseconds()),
	}, nil
}
