package requests

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// BeginReadingRequest 开始解读的请求体
// 问题是可选的，且不对内容做任何校验
type BeginReadingRequest struct {
	Question string `json:"question"`
}

// DrawCardRequest 抽牌请求体
type DrawCardRequest struct {
	Position int `json:"position" valid:"position"`
}

// ValidateBeginReading 解析开始解读请求
func ValidateBeginReading(c *gin.Context) (*BeginReadingRequest, error) {
	var req BeginReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}
	return &req, nil
}

// ValidateDrawCard 解析并校验抽牌请求
func ValidateDrawCard(c *gin.Context) (*DrawCardRequest, error) {
	var req DrawCardRequest

	// 1. 绑定 JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	// 2. 验证规则：位置只能是 0、1、2
	rules := govalidator.MapData{
		"position": []string{"in:0,1,2"},
	}

	messages := govalidator.MapData{
		"position": []string{
			"in:抽牌位置必须是 0、1 或 2",
		},
	}

	if err := ValidateStruct(&req, rules, messages); err != nil {
		return nil, err
	}

	return &req, nil
}
