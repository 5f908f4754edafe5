package builtin

import (
	"uriql/internal/edm"
	"uriql/internal/funcsig"
)

func addStringFunctions(fns catalogMap) {
	str := prim(edm.KindString, true)
	boolean := prim(edm.KindBoolean, false)
	i32 := prim(edm.KindInt32, false)

	for _, name := range []string{"endswith", "startswith", "contains", "matchespattern"} {
		fns[name] = []funcsig.WithReturnType{funcsig.NewFunction(boolean, str, str)}
	}
	fns["indexof"] = []funcsig.WithReturnType{funcsig.NewFunction(i32, str, str)}
	fns["replace"] = []funcsig.WithReturnType{funcsig.NewFunction(str, str, str, str)}
	fns["concat"] = []funcsig.WithReturnType{funcsig.NewFunction(str, str, str)}
	fns["length"] = []funcsig.WithReturnType{funcsig.NewFunction(i32, str)}
	for _, name := range []string{"tolower", "toupper", "trim"} {
		fns[name] = []funcsig.WithReturnType{funcsig.NewFunction(str, str)}
	}

	head := []*edm.TypeRef{str}
	substring := permutations(str, head, edm.KindInt32)
	substring = append(substring, permutations(str, head, edm.KindInt32, edm.KindInt32)...)
	fns["substring"] = substring
}

func addDateTimeFunctions(fns catalogMap) {
	i32 := prim(edm.KindInt32, false)
	decimal := prim(edm.KindDecimal, false)
	dto := prim(edm.KindDateTimeOffset, false)

	for _, name := range []string{"year", "month", "day"} {
		fns[name] = argPairs(i32, edm.KindDateTimeOffset, edm.KindDate)
	}
	for _, name := range []string{"hour", "minute", "second"} {
		fns[name] = argPairs(i32, edm.KindDateTimeOffset, edm.KindDuration, edm.KindTimeOfDay)
	}
	fns["fractionalseconds"] = argPairs(decimal, edm.KindDateTimeOffset, edm.KindTimeOfDay)
	fns["totaloffsetminutes"] = argPairs(i32, edm.KindDateTimeOffset)
	fns["totalseconds"] = argPairs(decimal, edm.KindDuration)
	fns["date"] = argPairs(prim(edm.KindDate, false), edm.KindDateTimeOffset)
	fns["time"] = argPairs(prim(edm.KindTimeOfDay, false), edm.KindDateTimeOffset)
	for _, name := range []string{"now", "maxdatetime", "mindatetime"} {
		fns[name] = []funcsig.WithReturnType{funcsig.NewFunction(dto)}
	}
}

func addMathFunctions(fns catalogMap) {
	for _, name := range []string{"round", "floor", "ceiling"} {
		fns[name] = sameTypePairs(edm.KindDouble, edm.KindDecimal)
	}
}

func addSpatialFunctions(fns catalogMap) {
	double := prim(edm.KindDouble, true)
	boolean := prim(edm.KindBoolean, true)
	geo := func(k edm.PrimitiveKind) *edm.TypeRef { return prim(k, true) }

	fns["geo.distance"] = []funcsig.WithReturnType{
		funcsig.NewFunction(double, geo(edm.KindGeographyPoint), geo(edm.KindGeographyPoint)),
		funcsig.NewFunction(double, geo(edm.KindGeometryPoint), geo(edm.KindGeometryPoint)),
	}
	fns["geo.intersects"] = []funcsig.WithReturnType{
		funcsig.NewFunction(boolean, geo(edm.KindGeographyPoint), geo(edm.KindGeographyPolygon)),
		funcsig.NewFunction(boolean, geo(edm.KindGeographyPolygon), geo(edm.KindGeographyPoint)),
		funcsig.NewFunction(boolean, geo(edm.KindGeometryPoint), geo(edm.KindGeometryPolygon)),
		funcsig.NewFunction(boolean, geo(edm.KindGeometryPolygon), geo(edm.KindGeometryPoint)),
	}
	fns["geo.length"] = []funcsig.WithReturnType{
		funcsig.NewFunction(double, geo(edm.KindGeographyLineString)),
		funcsig.NewFunction(double, geo(edm.KindGeometryLineString)),
	}
}
