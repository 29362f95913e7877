package cmd

import (
	"fmt"
	"strconv"

	"github.com/roman-ra/iniload/internal/log"
	"github.com/roman-ra/iniload/parse/ini"
	"github.com/roman-ra/iniload/pkg"
	"github.com/spf13/cobra"
)

type GetParams struct {
	Input   string `json:"input"`   // 输入文件路径
	Section string `json:"section"` // 查找的section
	Key     string `json:"key"`     // 查找的key
	Type    string `json:"type"`    // 值类型 int/float/string
	Default string `json:"default"` // 默认值
}

var getParams *GetParams

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "query a typed key from an ini file",
	Run:   getRun,
}

var sectionsInput string

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "list sections and key counts of an ini file",
	Run:   sectionsRun,
}

func init() {
	getParams = &GetParams{}
	getCmd.Flags().StringVarP(&getParams.Input, "input", "i", "", "input file path")
	getCmd.Flags().StringVarP(&getParams.Section, "section", "s", "", "section name (empty for keys without a section)")
	getCmd.Flags().StringVarP(&getParams.Key, "key", "k", "", "key name")
	getCmd.Flags().StringVarP(&getParams.Type, "type", "t", "string", "value type: int, float or string")
	getCmd.Flags().StringVarP(&getParams.Default, "default", "d", "", "fallback printed when the key is absent or of another type")

	sectionsCmd.Flags().StringVarP(&sectionsInput, "input", "i", "", "input file path")
}

func loadInput(path string) (*ini.File, bool) {
	if len(path) == 0 {
		fmt.Println("no input file path")
		return nil, false
	}
	exist, err := pkg.CheckFileExist(path)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return nil, false
	}
	if !exist {
		fmt.Println("input file not exist")
		return nil, false
	}
	if size, err := pkg.FileSize(path); err == nil {
		log.Debugf("loading %s (%d bytes)", path, size)
	}
	file, err := ini.Load(path)
	if err != nil {
		log.WithError(err).Error("load failed")
		fmt.Println("load error:", err)
		return nil, false
	}
	return file, true
}

func getRun(cmd *cobra.Command, args []string) {
	file, ok := loadInput(getParams.Input)
	if !ok {
		return
	}
	defer file.Release()

	log.Debugf("query section=%q key=%q type=%s", getParams.Section, getParams.Key, getParams.Type)

	switch getParams.Type {
	case "int":
		def, _ := strconv.Atoi(getParams.Default)
		fmt.Println(file.GetInt(getParams.Section, getParams.Key, def))
	case "float":
		def, _ := strconv.ParseFloat(getParams.Default, 32)
		fmt.Println(file.GetFloat(getParams.Section, getParams.Key, float32(def)))
	case "string":
		fmt.Println(file.GetString(getParams.Section, getParams.Key, getParams.Default))
	default:
		fmt.Println("unknown type:", getParams.Type)
	}
}

func sectionsRun(cmd *cobra.Command, args []string) {
	file, ok := loadInput(sectionsInput)
	if !ok {
		return
	}
	defer file.Release()

	fmt.Printf("%d section(s)\n", file.NumSections())
	for _, sec := range file.Sections() {
		name := sec.Name
		if name == "" {
			name = "(no section)"
		}
		fmt.Printf("%s: %d key(s)\n", name, len(sec.Keys))
	}
}
