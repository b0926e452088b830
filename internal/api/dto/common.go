package dto

import "strconv"

// Response 统一响应封装
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// FormatID 实体 ID 转十进制字符串，用作缓存键和榜单成员
func FormatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
