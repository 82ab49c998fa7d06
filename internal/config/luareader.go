package config

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

// ParseConfigurationFile executes a Lua file and maps the table it returns
// onto config, which must be a pointer to a struct with gluamapper tags.
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); err != nil {
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return ErrNoTable
	}

	mapper := gluamapper.NewMapper(gluamapper.Option{
		NameFunc: gluamapper.Id,
		TagName:  "gluamapper",
	})
	return mapper.Map(table, config)
}
