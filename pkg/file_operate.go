package pkg

import "os"

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FileSize 获取文件大小
func FileSize(filePath string) (int64, error) {
	info, err := os.Lstat(filePath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
