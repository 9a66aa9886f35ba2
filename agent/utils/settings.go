package utils

import (
	"time"

	"github.com/golang/glog"
)

const HTTPReqTimeout = 1 * time.Minute

// Version is the version of the library and the vcx CLI.
var Version = "0.1.0"

var Settings = &Hub{}

type Hub struct {
	agencyURL      string        // URL of the relay (cloud agent) service
	dbName         string        // bolt file where wallet and objects are persisted
	keysetFile     string        // tink keyset used to encrypt persisted objects, optional
	backupName     string        // backup file of the bolt DB
	backupInterval time.Duration // interval between DB backups, zero disables
	pollInterval   time.Duration // interval of the connection watch loop
	timeout        time.Duration // timeout setting for http requests
	versionInfo    string        // Version number etc. in free format as a string
}

func (h *Hub) AgencyURL() string {
	if h.agencyURL == "" {
		glog.Warningln("agency URL is empty")
	}
	return h.agencyURL
}

func (h *Hub) SetAgencyURL(u string) {
	h.agencyURL = u
}

func (h *Hub) DBName() string {
	return h.dbName
}

func (h *Hub) SetDBName(name string) {
	h.dbName = name
}

func (h *Hub) KeysetFile() string {
	return h.keysetFile
}

func (h *Hub) SetKeysetFile(name string) {
	h.keysetFile = name
}

// BackupName returns the backup file name. If it's not set the default is the
// DB name with a _backup suffix.
func (h *Hub) BackupName() string {
	if h.backupName == "" && h.dbName != "" {
		return h.dbName + "_backup"
	}
	return h.backupName
}

func (h *Hub) SetBackupName(name string) {
	h.backupName = name
}

func (h *Hub) BackupInterval() time.Duration {
	return h.backupInterval
}

func (h *Hub) SetBackupInterval(interval time.Duration) {
	h.backupInterval = interval
}

func (h *Hub) PollInterval() time.Duration {
	if h.pollInterval == 0 {
		return 5 * time.Second
	}
	return h.pollInterval
}

func (h *Hub) SetPollInterval(interval time.Duration) {
	h.pollInterval = interval
}

func (h *Hub) SetTimeout(to time.Duration) {
	h.timeout = to
}

func (h *Hub) Timeout() time.Duration {
	if h.timeout == 0 {
		return HTTPReqTimeout
	}
	return h.timeout
}

// SetVersionInfo sets current version info of this library. The info is shown
// in the connection info JSON.
func (h *Hub) SetVersionInfo(info string) {
	h.versionInfo = info
}

func (h *Hub) VersionInfo() string {
	if h.versionInfo == "" {
		return Version
	}
	return h.versionInfo
}
