//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include <stdlib.h>
#include <string.h>
#include <ApplicationServices/ApplicationServices.h>

// AXAttrValue carries one attribute value across the cgo boundary.
// kind: 0 unsupported, 1 string, 2 bool, 3 number, 4 point, 5 size,
// 6 element array, 7 element, 8 url.
typedef struct {
	int kind;
	char *str;
	int boolean;
	double number;
	double x;
	double y;
	CFTypeRef *items;
	int count;
	AXUIElementRef element;
} AXAttrValue;

static char *cfstring_dup(CFStringRef s) {
	if (s == NULL) return NULL;
	CFIndex len = CFStringGetLength(s);
	CFIndex max = CFStringGetMaximumSizeForEncoding(len, kCFStringEncodingUTF8) + 1;
	char *buf = malloc(max);
	if (buf == NULL) return NULL;
	if (!CFStringGetCString(s, buf, max, kCFStringEncodingUTF8)) {
		free(buf);
		return NULL;
	}
	return buf;
}

static int ax_copy_attr(AXUIElementRef el, const char *name, AXAttrValue *out) {
	memset(out, 0, sizeof(*out));
	CFStringRef cfName = CFStringCreateWithCString(kCFAllocatorDefault, name, kCFStringEncodingUTF8);
	CFTypeRef value = NULL;
	AXError err = AXUIElementCopyAttributeValue(el, cfName, &value);
	CFRelease(cfName);
	if (err != kAXErrorSuccess || value == NULL) return -1;

	CFTypeID tid = CFGetTypeID(value);
	if (tid == CFStringGetTypeID()) {
		out->kind = 1;
		out->str = cfstring_dup((CFStringRef)value);
	} else if (tid == CFBooleanGetTypeID()) {
		out->kind = 2;
		out->boolean = CFBooleanGetValue((CFBooleanRef)value) ? 1 : 0;
	} else if (tid == CFNumberGetTypeID()) {
		out->kind = 3;
		CFNumberGetValue((CFNumberRef)value, kCFNumberDoubleType, &out->number);
	} else if (tid == AXValueGetTypeID()) {
		AXValueType vt = AXValueGetType((AXValueRef)value);
		if (vt == kAXValueTypeCGPoint) {
			CGPoint p;
			if (AXValueGetValue((AXValueRef)value, kAXValueTypeCGPoint, &p)) {
				out->kind = 4;
				out->x = p.x;
				out->y = p.y;
			}
		} else if (vt == kAXValueTypeCGSize) {
			CGSize s;
			if (AXValueGetValue((AXValueRef)value, kAXValueTypeCGSize, &s)) {
				out->kind = 5;
				out->x = s.width;
				out->y = s.height;
			}
		}
	} else if (tid == CFArrayGetTypeID()) {
		CFArrayRef arr = (CFArrayRef)value;
		CFIndex n = CFArrayGetCount(arr);
		out->items = malloc(sizeof(CFTypeRef) * (n > 0 ? n : 1));
		if (out->items != NULL) {
			out->kind = 6;
			out->count = (int)n;
			for (CFIndex i = 0; i < n; i++) {
				CFTypeRef item = CFArrayGetValueAtIndex(arr, i);
				CFRetain(item);
				out->items[i] = item;
			}
		}
	} else if (tid == AXUIElementGetTypeID()) {
		out->kind = 7;
		CFRetain(value);
		out->element = (AXUIElementRef)value;
	} else if (tid == CFURLGetTypeID()) {
		out->kind = 8;
		out->str = cfstring_dup(CFURLGetString((CFURLRef)value));
	}
	CFRelease(value);
	return out->kind == 0 ? -2 : 0;
}

static AXUIElementRef ax_app_element(pid_t pid) {
	return AXUIElementCreateApplication(pid);
}

static void ax_release(AXUIElementRef el) {
	if (el != NULL) CFRelease((CFTypeRef)el);
}
*/
import "C"
import (
	"runtime"
	"unsafe"

	"github.com/axscope/axscope/internal/platform"
)

// axElement wraps a retained AXUIElementRef. The finalizer releases the
// underlying CF object when the Go handle is collected.
type axElement struct {
	ref C.AXUIElementRef
}

func wrapElement(ref C.AXUIElementRef) *axElement {
	el := &axElement{ref: ref}
	runtime.SetFinalizer(el, func(e *axElement) {
		C.ax_release(e.ref)
	})
	return el
}

// AXClient implements platform.AXClient over the macOS Accessibility API.
type AXClient struct{}

// NewAXClient creates a macOS accessibility client.
func NewAXClient() *AXClient {
	return &AXClient{}
}

// Trusted reports whether the process has accessibility permission.
func (c *AXClient) Trusted() bool {
	return IsAccessibilityTrusted()
}

// AppElement returns the root accessibility element for a process.
func (c *AXClient) AppElement(pid int) (platform.Element, error) {
	ref := C.ax_app_element(C.pid_t(pid))
	if ref == nil {
		return nil, platform.ErrProcessNotFound
	}
	return wrapElement(ref), nil
}

// Attr copies one attribute of an element. All platform failure codes are
// collapsed into ErrElementUnreachable per the error taxonomy.
func (c *AXClient) Attr(el platform.Element, name string) (interface{}, error) {
	ax, ok := el.(*axElement)
	if !ok || ax.ref == nil {
		return nil, platform.ErrElementUnreachable
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var out C.AXAttrValue
	if C.ax_copy_attr(ax.ref, cname, &out) != 0 {
		return nil, platform.ErrElementUnreachable
	}

	switch out.kind {
	case 1, 8:
		if out.str == nil {
			return "", nil
		}
		s := C.GoString(out.str)
		C.free(unsafe.Pointer(out.str))
		return s, nil
	case 2:
		return out.boolean != 0, nil
	case 3:
		return float64(out.number), nil
	case 4:
		return platform.Point{X: float64(out.x), Y: float64(out.y)}, nil
	case 5:
		return platform.Size{Width: float64(out.x), Height: float64(out.y)}, nil
	case 6:
		n := int(out.count)
		elements := make([]platform.Element, 0, n)
		if n > 0 {
			items := unsafe.Slice(out.items, n)
			for i := 0; i < n; i++ {
				elements = append(elements, wrapElement(C.AXUIElementRef(items[i])))
			}
		}
		C.free(unsafe.Pointer(out.items))
		return elements, nil
	case 7:
		return wrapElement(out.element), nil
	}
	return nil, platform.ErrElementUnreachable
}
