// Package config 站点配置信息
package config

// Initialize 加载本包下的各个配置文件
// 仅用于触发当前目录下的所有 init 方法
func Initialize() {
}
