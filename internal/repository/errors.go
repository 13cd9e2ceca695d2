package repository

import "gorm.io/gorm"

// ErrNotFound 统一的"记录不存在"，业务层用它判断，不直接依赖 gorm
var ErrNotFound = gorm.ErrRecordNotFound
