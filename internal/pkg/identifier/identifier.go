// Package identifier 统一处理外部传入的实体标识符 token。
// 标识符由存储侧生成，这里只做解析校验，不负责构造。
package identifier

import (
	"errors"

	"github.com/google/uuid"
)

// ErrMalformed token 不是合法的标识符。
// 对调用方而言等同于"未找到"，但内部保留区分，便于测试和排查。
var ErrMalformed = errors.New("malformed identifier token")

// Parse 校验标识符 token 并返回规范化形式。
// 任何非法输入都以 ErrMalformed 返回，绝不 panic。
func Parse(token string) (string, error) {
	id, err := uuid.Parse(token)
	if err != nil {
		return "", ErrMalformed
	}
	return id.String(), nil
}
