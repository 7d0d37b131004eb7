// Package version 提供构建版本信息。
package version

import "runtime"

// AppName 应用名称。
const AppName = "envrender"

// 构建期通过 -ldflags 注入：
//
//	go build -ldflags "-X .../internal/version.Version=v1.0.0 ..."
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info 版本信息。
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get 返回当前构建的版本信息。
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}
